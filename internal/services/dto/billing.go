package dto

// SubscriptionResponse carries what the client needs to complete payment.
type SubscriptionResponse struct {
	SubscriptionID string `json:"subscriptionId"`
	ClientSecret   string `json:"clientSecret"`
}
