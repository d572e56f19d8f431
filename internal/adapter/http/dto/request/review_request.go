package request

// ReviewContentRequest submits explicit text for review. The sample-review
// flow has its own endpoint and takes no body, so an absent content field
// here is always a caller error rather than a request for the canned sample.

type ReviewContentRequest struct {
	ContractContent string `json:"contract_content" binding:"required"`
}

// SignatureRequest selects the signatory for the simulated signing flow.

type SignatureRequest struct {
	Signatory string `json:"signatory" binding:"required"`
}
