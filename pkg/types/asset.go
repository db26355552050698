// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RiskProfile classifies the delivery risk of an asset.
type RiskProfile string

const (
	RiskLow    RiskProfile = "low"
	RiskMedium RiskProfile = "medium"
	RiskHigh   RiskProfile = "high"
)

// TokenStatus indicates how far an asset has progressed toward financing.
type TokenStatus string

const (
	TokenResearch TokenStatus = "Research"
	TokenCoDev    TokenStatus = "Co-Dev"
	TokenBankable TokenStatus = "Bankable"
)

// TaskStatus tracks a validation task through its lifecycle.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in-progress"
	TaskDone       TaskStatus = "done"
)

// TaskPriority ranks a validation task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// TIRScore is the four-axis readiness rubric for an asset. The composite
// is supplied by the model alongside the sub-scores and is preserved as-is;
// no weighting formula is recomputed locally.
type TIRScore struct {
	// Technology rates technical maturity, 0-100.
	Technology int `json:"technology" yaml:"technology"`

	// IP rates the intellectual-property position, 0-100.
	IP int `json:"ip" yaml:"ip"`

	// Resources rates supply and manufacturing readiness, 0-100.
	Resources int `json:"resources" yaml:"resources"`

	// Market rates commercial pull, 0-100.
	Market int `json:"market" yaml:"market"`

	// Composite is the aggregate score used for downstream classification.
	Composite int `json:"composite" yaml:"composite"`
}

// BioAnalog is a biological reference and the mechanism it contributes.
type BioAnalog struct {
	// Species is the organism name (e.g. "Nelumbo nucifera").
	Species string `json:"species" yaml:"species"`

	// Mechanism describes the biological mechanism being transposed.
	Mechanism string `json:"mechanism" yaml:"mechanism"`

	// KeyAttribute is the engineering benefit the mechanism provides.
	KeyAttribute string `json:"key_attribute" yaml:"key_attribute"`
}

// Supplier is a supply-chain partner capable of producing the asset.
type Supplier struct {
	Vendor        string `json:"vendor" yaml:"vendor"`
	Location      string `json:"location" yaml:"location"`
	Capability    string `json:"capability" yaml:"capability"`
	Certification string `json:"certification" yaml:"certification"`
}

// RoadmapPhase is one step of the validation roadmap. Phases are ordered;
// the order is execution order and is never rearranged by the pipeline.
type RoadmapPhase struct {
	// Phase is the phase name.
	Phase string `json:"phase" yaml:"phase"`

	// DurationMonths is the phase duration, a positive integer.
	DurationMonths int `json:"duration_months" yaml:"duration_months"`

	// Deliverables describes the phase output.
	Deliverables string `json:"deliverables" yaml:"deliverables"`

	// Cost is the phase budget, non-negative.
	Cost float64 `json:"cost" yaml:"cost"`
}

// Task is a validation task attached to an asset. Tasks are created with
// status "todo" and mutated only through explicit field updates; the core
// never deletes them.
type Task struct {
	// ID is unique within the owning asset, not globally.
	ID string `json:"id" yaml:"id"`

	Title    string       `json:"title" yaml:"title"`
	Assignee string       `json:"assignee" yaml:"assignee"`
	DueDate  string       `json:"due_date" yaml:"due_date"`
	Status   TaskStatus   `json:"status" yaml:"status"`
	Priority TaskPriority `json:"priority" yaml:"priority"`
}

// IPStatus summarizes the intellectual-property landscape for an asset.
type IPStatus struct {
	// BlockingPatents lists patents that could block exploitation.
	BlockingPatents []string `json:"blocking_patents" yaml:"blocking_patents"`

	// FreedomToOperate is the FTO assessment (e.g. "High", "Medium", "Low").
	FreedomToOperate string `json:"freedom_to_operate" yaml:"freedom_to_operate"`

	// PatentFilingStrategy describes the recommended filing approach.
	PatentFilingStrategy string `json:"patent_filing_strategy" yaml:"patent_filing_strategy"`

	// MoatDurationYears estimates how long the IP position holds.
	MoatDurationYears int `json:"moat_duration_years" yaml:"moat_duration_years"`
}

// Financials captures the investment profile of an asset.
type Financials struct {
	CapexTotal       float64 `json:"capex_total" yaml:"capex_total"`
	ROIHorizonMonths int     `json:"roi_horizon_months" yaml:"roi_horizon_months"`
	RevenueStream    string  `json:"revenue_stream" yaml:"revenue_stream"`
}

// Regulatory records the regulatory alignment of an asset.
type Regulatory struct {
	// Alignment names the framework the asset aligns with (e.g. "EU Green Deal").
	Alignment string `json:"alignment" yaml:"alignment"`

	// Standards lists applicable standards.
	Standards []string `json:"standards" yaml:"standards"`
}

// Asset is the generated R&D solution record, the pipeline's unit of output.
//
// Every asset produced by the pipeline carries a non-zero TIRScore, a
// trl_target, a regulatory block, a risk_profile, and a token_status even
// when the model omits them; those five are supplied by the merge rule.
// The asset owns all nested collections; nothing is shared by reference
// across assets.
type Asset struct {
	// ID is unique and assigned at creation time, never taken from a payload.
	ID string `json:"id" yaml:"id"`

	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`

	// GeneratedDate is the creation date in YYYY-MM-DD form.
	GeneratedDate string `json:"generated_date" yaml:"generated_date"`

	TIRScores TIRScore `json:"tir_scores" yaml:"tir_scores"`

	// TRLCurrent and TRLTarget are technology readiness levels. Current is
	// expected below target but this is not enforced.
	TRLCurrent int `json:"trl_current" yaml:"trl_current"`
	TRLTarget  int `json:"trl_target" yaml:"trl_target"`

	RiskProfile RiskProfile    `json:"risk_profile" yaml:"risk_profile"`
	BioAnalogs  []BioAnalog    `json:"bio_analogs" yaml:"bio_analogs"`
	IPStatus    IPStatus       `json:"ip_status" yaml:"ip_status"`
	SupplyChain []Supplier     `json:"supply_chain" yaml:"supply_chain"`
	Financials  Financials     `json:"financials" yaml:"financials"`
	Regulatory  Regulatory     `json:"regulatory" yaml:"regulatory"`
	Roadmap     []RoadmapPhase `json:"roadmap" yaml:"roadmap"`
	Tasks       []Task         `json:"tasks" yaml:"tasks"`
	TokenStatus TokenStatus    `json:"token_status" yaml:"token_status"`

	// ContractAddress is set once the asset is tokenized.
	ContractAddress string `json:"contract_address,omitempty" yaml:"contract_address,omitempty"`

	// Passport is the optional environmental audit record. Absent until an
	// audit run attaches one; a later audit replaces it wholesale.
	Passport *EnvironmentalPassport `json:"passport,omitempty" yaml:"passport,omitempty"`
}
