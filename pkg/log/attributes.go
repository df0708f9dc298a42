// Package log defines standard attribute keys for regression model operations.
//
// This file contains predefined attribute keys that provide consistency across
// all logging operations in golinreg. Using these standard keys enables better
// log analysis, monitoring, and debugging of model workflows.
//
// The attributes are organized into categories:
//   - Model and Operation Context
//   - Data Shape and Characteristics
//   - Coefficients and Performance
//   - Prediction Context
//   - Error Context
//
// These keys follow a hierarchical naming convention (e.g., "model.name",
// "data.samples") to enable structured log analysis and filtering.

package log

// Model and Operation Context
// These attributes identify the model type, instance, and operation being performed.
const (
	// ModelNameKey identifies the type of model emitting the record.
	// Examples: "LinearModel", "MeanImputer"
	ModelNameKey = "model.name"

	// EstimatorIDKey provides a unique identifier for a specific model instance.
	// This is useful for tracking multiple instances of the same model type.
	// Examples: "lm-001", UUID strings
	EstimatorIDKey = "estimator.id"

	// OperationKey specifies the model operation being performed.
	// Standard values: "recalculate", "predict", "add_predictors",
	// "add_targets", "reset", "impute", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies which component or package is performing the operation.
	// Examples: "linear.model", "preprocessing.imputer", "metrics"
	ComponentKey = "ml.component"
)

// Data Shape and Characteristics
// These attributes describe the structure and properties of data being processed.
const (
	// SamplesKey indicates the number of observations in a sequence.
	SamplesKey = "data.samples"

	// PairsKey indicates the number of complete predictor/target pairs.
	// Equal to data.samples once the two sequences are balanced.
	PairsKey = "data.pairs"

	// PendingKey indicates how many appended values are still waiting for
	// their counterpart in the other sequence. Non-zero while unbalanced.
	PendingKey = "data.pending"

	// MissingKey indicates the number of missing (NaN) entries in a sequence.
	MissingKey = "data.missing"

	// ImputedKey indicates the number of values replaced during imputation.
	ImputedKey = "data.imputed"

	// SequenceKey names the sequence an operation touched.
	// Standard values: "predictors", "targets"
	SequenceKey = "data.sequence"
)

// Coefficients and Performance
// These attributes capture fitted coefficients, fit quality, and timing.
const (
	// SlopeKey records the fitted slope of the regression line.
	SlopeKey = "metrics.slope"

	// InterceptKey records the fitted intercept of the regression line.
	InterceptKey = "metrics.intercept"

	// RValueKey records the Pearson correlation coefficient of the data.
	// Range [-1.0, 1.0]; NaN when the target variance is zero.
	RValueKey = "metrics.r"

	// R2ScoreKey records R² coefficient of determination for scoring.
	// Range typically (-∞, 1.0], with 1.0 being perfect prediction.
	R2ScoreKey = "metrics.r2_score"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Prediction Context
// These attributes describe prediction operations and their results.
const (
	// PredictorKey records the input value handed to MakePrediction.
	PredictorKey = "preds.input"

	// PredictionKey records the predicted target value.
	PredictionKey = "preds.value"
)

// Error and Warning Context
// These attributes provide additional context for error and warning messages.
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	// Examples: "NOT_READY", "LENGTH_MISMATCH", "INSUFFICIENT_DATA"
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	// Examples: "DataError", "InsufficientDataError", "ModelNotReadyError"
	ErrorTypeKey = "error.type"

	// StacktraceKey contains stack trace information for debugging.
	// Automatically populated by the error logging functions.
	StacktraceKey = "error.stacktrace"

	// SuggestionKey provides helpful suggestions for resolving issues.
	// Examples: "Balance the sequences before recalculating"
	SuggestionKey = "error.suggestion"
)

// Standard attribute value constants for common operations.
// Using these constants ensures consistency across the codebase.
const (
	// Standard model operations
	OperationRecalculate   = "recalculate"
	OperationPredict       = "predict"
	OperationAddPredictors = "add_predictors"
	OperationAddTargets    = "add_targets"
	OperationReset         = "reset"
	OperationImpute        = "impute"
	OperationScore         = "score"

	// Imputer operations
	OperationFit          = "fit"
	OperationTransform    = "transform"
	OperationFitTransform = "fit_transform"

	// Standard sequence names
	SequencePredictors = "predictors"
	SequenceTargets    = "targets"

	// Standard error codes
	ErrorNotReady         = "NOT_READY"
	ErrorLengthMismatch   = "LENGTH_MISMATCH"
	ErrorEmptyData        = "EMPTY_DATA"
	ErrorInsufficientData = "INSUFFICIENT_DATA"
	ErrorMissingValues    = "MISSING_VALUES"
	ErrorZeroVariance     = "ZERO_VARIANCE"
)
