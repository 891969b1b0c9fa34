package handler

// ConsentRequest is the payload for grant, revoke, and reinstate.
type ConsentRequest struct {
	ClientID string `json:"client_id"`
}
