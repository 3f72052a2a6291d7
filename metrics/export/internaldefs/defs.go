package internaldefs

import (
	partialpass "github.com/partialpass/partialpass"
)

// CounterDef defines a public type used by partialpass APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   partialpass.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by partialpass APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   partialpass.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the partial-password engine.
var CounterDefs = []CounterDef{
	{ID: partialpass.MetricEnrollSuccess, Name: "partialpass_enroll_success_total", Help: "Enrollments that stored the full requested pattern count."},
	{ID: partialpass.MetricEnrollPartial, Name: "partialpass_enroll_partial_total", Help: "Enrollments that exhausted eligibility before the requested count."},
	{ID: partialpass.MetricEnrollFailure, Name: "partialpass_enroll_failure_total", Help: "Failed enrollment attempts."},
	{ID: partialpass.MetricChallengeIssued, Name: "partialpass_challenge_issued_total", Help: "Issued challenges."},
	{ID: partialpass.MetricChallengeFailure, Name: "partialpass_challenge_failure_total", Help: "Failed challenge requests."},
	{ID: partialpass.MetricVerifySuccess, Name: "partialpass_verify_success_total", Help: "Successful verifications."},
	{ID: partialpass.MetricVerifyFailure, Name: "partialpass_verify_failure_total", Help: "Failed verifications."},
	{ID: partialpass.MetricVerifyUnknownPattern, Name: "partialpass_verify_unknown_pattern_total", Help: "Verifications against a pattern with no stored hash."},
	{ID: partialpass.MetricTokenRejected, Name: "partialpass_token_rejected_total", Help: "Rejected challenge tokens."},
	{ID: partialpass.MetricEnrollmentRevoked, Name: "partialpass_enrollment_revoked_total", Help: "Deleted enrollments."},
	{ID: partialpass.MetricStoreError, Name: "partialpass_store_error_total", Help: "Pattern store errors."},
}

// HistogramDefs is an exported constant or variable used by the partial-password engine.
var HistogramDefs = []HistogramDef{
	{ID: partialpass.MetricEnrollLatency, Name: "partialpass_enroll_latency_seconds", Help: "Enroll latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the partial-password engine.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the partial-password engine.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets describes the normalizebuckets operation and its observable behavior.
//
// NormalizeBuckets may return an error when input validation, dependency calls, or security checks fail.
// NormalizeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets describes the cumulativebuckets operation and its observable behavior.
//
// CumulativeBuckets may return an error when input validation, dependency calls, or security checks fail.
// CumulativeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
