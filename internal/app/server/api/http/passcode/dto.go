package passcode

type input struct {
	Body verifyRequest
}

type verifyRequest struct {
	Passcode string `json:"passcode,omitempty" doc:"Shared passcode"`
}

type output struct {
	Status int
	Body   verifyResponse
}

type verifyResponse struct {
	Valid bool `json:"valid"`
}
