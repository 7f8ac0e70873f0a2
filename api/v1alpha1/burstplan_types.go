package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// BurstPlanSpec describes a planning request: which batch to place, on which
// site, and which elastic capacity may absorb the overflow.
type BurstPlanSpec struct {
	// Jobs selects the batch to plan. An empty path plans a synthetic batch.
	// +optional
	Jobs JobSourceSpec `json:"jobs,omitempty"`

	// Site is the name or code of a site profile in the catalog.
	// +kubebuilder:validation:MinLength=1
	// +kubebuilder:validation:Required
	Site string `json:"site"`

	// FixedCount overrides the fixed pool size of the site profile.
	// +kubebuilder:validation:Minimum=0
	// +optional
	FixedCount *int32 `json:"fixedCount,omitempty"`

	// MaxElastic is the largest elastic pool size to sweep. Defaults to 30.
	// +kubebuilder:validation:Minimum=0
	// +optional
	MaxElastic *int32 `json:"maxElastic,omitempty"`

	// Step is the elastic pool size increment. Defaults to 1.
	// +kubebuilder:validation:Minimum=1
	// +optional
	Step int32 `json:"step,omitempty"`

	// Elastic selects the elastic instance types and pricing tiers.
	// +optional
	Elastic ElasticSpec `json:"elastic,omitempty"`

	// CostWeight balances cost against makespan when picking the recommendation.
	// 1 picks the cheapest Pareto-optimal configuration, 0 the fastest.
	// Kept as a string to avoid floats in the schema. Defaults to "0.5".
	// +kubebuilder:validation:Pattern=`^(0(\.\d+)?|1(\.0+)?)$`
	// +optional
	CostWeight string `json:"costWeight,omitempty"`

	// Constraints restrict which configurations may be recommended.
	// +optional
	Constraints Constraints `json:"constraints,omitempty"`
}

// JobSourceSpec points at a results file and controls resampling.
type JobSourceSpec struct {
	// Path is a results CSV with measured fixed-pool durations.
	// +optional
	Path string `json:"path,omitempty"`

	// LedgerPath is an optional ledger CSV joined onto jobs by event name.
	// +optional
	LedgerPath string `json:"ledgerPath,omitempty"`

	// BatchSize resamples the dataset with replacement to this many jobs.
	// +kubebuilder:validation:Minimum=0
	// +optional
	BatchSize *int32 `json:"batchSize,omitempty"`

	// Seed makes resampling reproducible.
	// +kubebuilder:validation:Minimum=0
	// +optional
	Seed *int64 `json:"seed,omitempty"`
}

// ElasticSpec selects the elastic capacity to sweep.
type ElasticSpec struct {
	// InstanceType is the catalog instance type of single-instance sweeps.
	// +optional
	InstanceType string `json:"instanceType,omitempty"`

	// PricingTier is the billing mode of single-instance sweeps.
	// +kubebuilder:validation:Enum=ondemand;spot;1yr_ri;3yr_ri
	// +optional
	PricingTier string `json:"pricingTier,omitempty"`

	// MultiInstance sweeps every catalog instance type across PricingTiers.
	// +optional
	MultiInstance bool `json:"multiInstance,omitempty"`

	// PricingTiers are the billing modes of multi-instance sweeps.
	// +optional
	PricingTiers []string `json:"pricingTiers,omitempty"`

	// FixedJobDurationSeconds switches single-instance sweeps to fixed
	// processing mode: every elastic job takes this long regardless of its
	// measured duration, and the instance's speed ratio is ignored.
	// +kubebuilder:validation:Minimum=1
	// +optional
	FixedJobDurationSeconds *int64 `json:"fixedJobDurationSeconds,omitempty"`
}

// Constraints cap the recommended configuration. Unset caps do not apply.
type Constraints struct {
	// MaxCost is the budget in dollars.
	// +kubebuilder:validation:Pattern=`^\d+(\.\d+)?$`
	// +optional
	MaxCost string `json:"maxCost,omitempty"`

	// MaxMakespanSeconds is the deadline for the whole batch.
	// +kubebuilder:validation:Minimum=0
	// +optional
	MaxMakespanSeconds int64 `json:"maxMakespanSeconds,omitempty"`
}

// Recommendation is the configuration picked from the Pareto frontier.
type Recommendation struct {
	// ConfigID identifies the configuration, e.g. "G5_C10".
	ConfigID string `json:"configID"`

	// +optional
	InstanceType string `json:"instanceType,omitempty"`
	// +optional
	PricingTier string `json:"pricingTier,omitempty"`

	FixedCount   int32 `json:"fixedCount"`
	ElasticCount int32 `json:"elasticCount"`

	// Cost is the elastic pool cost in dollars, formatted with two decimals.
	Cost string `json:"cost"`

	// MakespanSeconds is the batch completion time, rounded up.
	MakespanSeconds int64 `json:"makespanSeconds"`
}

// ActuationStatus reports whether the recommendation was published.
type ActuationStatus struct {
	// Applied indicates whether the desired elastic pool size was emitted.
	Applied bool `json:"applied"`
}

// BurstPlanStatus is the outcome of the last evaluation of a BurstPlan.
type BurstPlanStatus struct {
	// LastRunTime is the timestamp of the last evaluation.
	// +optional
	LastRunTime metav1.Time `json:"lastRunTime,omitempty"`

	// RunID identifies the evaluation in logs and reports.
	// +optional
	RunID string `json:"runID,omitempty"`

	// Jobs is the number of jobs in the planned batch.
	Jobs int32 `json:"jobs"`

	// SweptConfigurations is the number of evaluated configurations.
	SweptConfigurations int32 `json:"sweptConfigurations"`

	// ParetoOptimal is the number of non-dominated configurations.
	ParetoOptimal int32 `json:"paretoOptimal"`

	// Feasible is the number of Pareto-optimal configurations within the constraints.
	Feasible int32 `json:"feasible"`

	// Recommendation is unset when no configuration satisfies the constraints.
	// +optional
	Recommendation *Recommendation `json:"recommendation,omitempty"`

	// Actuation provides details about the actuation process.
	Actuation ActuationStatus `json:"actuation,omitempty"`

	// Conditions represent the latest available observations of the BurstPlan's state
	// +kubebuilder:validation:Optional
	// +patchMergeKey=type
	// +patchStrategy=merge
	// +listType=map
	// +listMapKey=type
	Conditions []metav1.Condition `json:"conditions,omitempty" patchStrategy:"merge" patchMergeKey:"type"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=bp
// +kubebuilder:printcolumn:name="Site",type=string,JSONPath=".spec.site"
// +kubebuilder:printcolumn:name="Recommended",type=string,JSONPath=".status.recommendation.configID"
// +kubebuilder:printcolumn:name="Cost",type=string,JSONPath=".status.recommendation.cost"
// +kubebuilder:printcolumn:name="Ready",type=string,JSONPath=".status.conditions[?(@.type=='OptimizationReady')].status"
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=".metadata.creationTimestamp"

// BurstPlan is the Schema for the burstplans API.
type BurstPlan struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   BurstPlanSpec   `json:"spec,omitempty"`
	Status BurstPlanStatus `json:"status,omitempty"`
}

// BurstPlanList contains a list of BurstPlan resources.
// +kubebuilder:object:root=true
type BurstPlanList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`

	Items []BurstPlan `json:"items"`
}

func init() {
	SchemeBuilder.Register(&BurstPlan{}, &BurstPlanList{})
}

// Condition Types for BurstPlan
const (
	// TypeJobsLoaded indicates whether the batch could be read
	TypeJobsLoaded = "JobsLoaded"
	// TypeOptimizationReady indicates whether the planner produced a recommendation
	TypeOptimizationReady = "OptimizationReady"
)

// Condition Reasons for JobsLoaded
const (
	// ReasonJobsFound indicates the batch was loaded
	ReasonJobsFound = "JobsFound"
	// ReasonJobsMissing indicates the results file could not be read or was empty
	ReasonJobsMissing = "JobsMissing"
	// ReasonSyntheticBatch indicates a generated batch was planned
	ReasonSyntheticBatch = "SyntheticBatch"
)

// Condition Reasons for OptimizationReady
const (
	// ReasonOptimizationSucceeded indicates a configuration was recommended
	ReasonOptimizationSucceeded = "OptimizationSucceeded"
	// ReasonOptimizationFailed indicates the sweep failed
	ReasonOptimizationFailed = "OptimizationFailed"
	// ReasonInvalidConfiguration indicates the spec could not be turned into a plan
	ReasonInvalidConfiguration = "InvalidConfiguration"
	// ReasonNoFeasibleConfiguration indicates no Pareto-optimal configuration meets the constraints
	ReasonNoFeasibleConfiguration = "NoFeasibleConfiguration"
)
