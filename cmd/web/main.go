// @title           pitchplan API
// @version         1.0
// @description     Backend for generating and managing football training sessions.
// @host            localhost:4000
// @BasePath        /

package main

import (
	"pitchplan_backend/internal/app"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	app.Run()
}
