package models

// PushSubscription mirrors a platform push subscription: the delivery
// endpoint issued by the push service plus the key material the server
// needs to encrypt messages for this client.
type PushSubscription struct {
	Endpoint string   `json:"endpoint"`
	Keys     PushKeys `json:"keys"`
}

type PushKeys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}
