package dto

// FlashMessage is a one-time notice shown on the next page.
type FlashMessage struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// FormField describes one input of a submission form.
type FormField struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

// FormResponse is returned by GET on a submit route in place of a rendered page.
type FormResponse struct {
	Title   string         `json:"title"`
	Action  string         `json:"action"`
	Method  string         `json:"method"`
	Fields  []FormField    `json:"fields"`
	Flashes []FlashMessage `json:"flashes"`
}

// ListResponse wraps a ledger listing together with pending flash messages.
type ListResponse[T any] struct {
	Records   []T            `json:"records"`
	NextToken string         `json:"next_token,omitempty"`
	Flashes   []FlashMessage `json:"flashes,omitempty"`
}
