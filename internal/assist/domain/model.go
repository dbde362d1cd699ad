// Package domain defines the structured planning document the assistant
// endpoint returns. The shape is a versioned contract shared with the
// completion model through a JSON Schema; see the service package for the
// schema source.
package domain

type Output struct {
	Scope               Scope        `json:"scope"`
	Architecture        Architecture `json:"architecture"`
	DataModel           []Entity     `json:"dataModel"`
	APISurface          []Endpoint   `json:"apiSurface"`
	DeliveryPlan        []Phase      `json:"deliveryPlan"`
	CostEstimate        CostEstimate `json:"costEstimate"`
	Diagrams            Diagrams     `json:"diagrams"`
	Risks               []string     `json:"risks"`
	ClarifyingQuestions []string     `json:"clarifyingQuestions"`
}

type Scope struct {
	Summary    string   `json:"summary"`
	Goals      []string `json:"goals"`
	OutOfScope []string `json:"outOfScope"`
}

type Architecture struct {
	Style      string      `json:"style"`
	Components []Component `json:"components"`
}

type Component struct {
	Name           string `json:"name"`
	Responsibility string `json:"responsibility"`
}

type Entity struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

type Field struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type Endpoint struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

type Phase struct {
	Name         string   `json:"name"`
	Weeks        int      `json:"weeks"`
	Deliverables []string `json:"deliverables"`
}

type CostEstimate struct {
	Currency string `json:"currency"`
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Notes    string `json:"notes"`
}

// Diagrams carries Mermaid sources rendered client-side.
type Diagrams struct {
	Flow string `json:"flow"`
	ERD  string `json:"erd"`
}
