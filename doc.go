// Package golinreg provides simple linear regression for Go: one predictor,
// one target, an OLS-fitted line, and mean imputation of missing values.
//
// The library is deliberately small. A single LinearModel owns a pair of
// predictor/target sequences, keeps its slope and intercept consistent with
// the data after every mutation, and answers point predictions. Missing
// values are represented as NaN and are imputed with the mean of the
// non-missing values in the same sequence.
//
// # Features
//
// - OLS slope/intercept with explicit recalculation
// - Mean imputation of missing (NaN) values, with warnings on replacement
// - Incremental appends of predictors and targets with automatic refit
// - Structured errors with stack traces and structured logging hooks
//
// # Installation
//
// Install golinreg using go get:
//
//	go get github.com/YuminosukeSato/golinreg
//
// # Quick Start
//
// Here's a simple regression over five observations:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/golinreg/linear"
//	)
//
//	func main() {
//	    lm, err := linear.New(
//	        []float64{1, 2, 3, 4, 5},
//	        []float64{15, 25, 35, 45, 55},
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    y, err := lm.MakePrediction(6)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println("prediction:", y) // 65
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - linear: the LinearModel (construction, mutation, prediction, scoring)
//   - metrics: evaluation metrics (MSE, RMSE, MAE, R², Pearson r)
//   - preprocessing: MeanImputer for missing-value handling
//   - core/model: estimator state and the small model interfaces
//   - pkg/errors: structured errors, warnings, panic recovery
//   - pkg/log: logging facade with slog and zerolog backends
//
// # Concurrency
//
// A LinearModel assumes a single writer. Hosts sharing one instance across
// goroutines must synchronize externally; the model itself takes no locks.
//
// # License
//
// golinreg is released under the MIT License.
package golinreg
