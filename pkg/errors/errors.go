// Package errors はプロジェクト全体のエラーハンドリングと警告システムを提供します。
// scikit-learnの警告・例外システムにインスパイアされており、構造化されたエラー情報を提供します。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("golinreg-Warning: %v\n", w)
	}
	// zerologロガー（循環importを避けるため遅延初期化）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
// これにより、MissingValueWarningなどのカスタム警告の処理方法を制御できます。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc はzerolog警告関数を設定します（循環importを避けるため）。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
// zerologが利用可能な場合は構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	// zerologが設定されている場合は優先的に使用
	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	// フォールバック: 従来のハンドラ
	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	scikit-learn互換の警告型
//
// ===========================================================================

// MissingValueWarning は欠測値が平均値で補完された場合に発生する警告です。
// 補完はデータを書き換えるため、呼び出し側が検知できるように通知します。
type MissingValueWarning struct {
	Sequence string  // 対象の系列名（"predictors" または "targets"）
	Replaced int     // 置き換えた欠測値の個数
	Mean     float64 // 補完に使用した平均値
}

func (w *MissingValueWarning) Error() string {
	return fmt.Sprintf("%d missing value(s) in %s imputed with mean %g", w.Replaced, w.Sequence, w.Mean)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *MissingValueWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("sequence", w.Sequence).
		Int("replaced", w.Replaced).
		Float64("mean", w.Mean).
		Str("type", "MissingValueWarning")
}

// NewMissingValueWarning は新しいMissingValueWarningを作成します。
func NewMissingValueWarning(sequence string, replaced int, mean float64) *MissingValueWarning {
	return &MissingValueWarning{Sequence: sequence, Replaced: replaced, Mean: mean}
}

// UndefinedMetricWarning は評価指標が計算できない場合に発生する警告です。
// 例えば、目的変数の分散がゼロで相関係数が定義できない場合など。
type UndefinedMetricWarning struct {
	Metric    string
	Condition string
	Result    float64 // この条件で返される値
}

func (w *UndefinedMetricWarning) Error() string {
	return fmt.Sprintf("'%s' is ill-defined and being set to %f due to %s.", w.Metric, w.Result, w.Condition)
}

// NewUndefinedMetricWarning は新しいUndefinedMetricWarningを作成します。
func NewUndefinedMetricWarning(metric, condition string, result float64) *UndefinedMetricWarning {
	return &UndefinedMetricWarning{Metric: metric, Condition: condition, Result: result}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// ModelNotReadyError はモデルが計算済みでない状態で `MakePrediction` などを呼び出した場合のエラーです。
// FitMethodは状態を整えるために呼ぶべきメソッド名を示します。
type ModelNotReadyError struct {
	ModelName string
	Method    string
	FitMethod string
}

func (e *ModelNotReadyError) Error() string {
	return fmt.Sprintf("golinreg: %s: this model is not ready yet. Call %s() before using %s()", e.ModelName, e.FitMethod, e.Method)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ModelNotReadyError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("fit_method", e.FitMethod).
		Str("type", "ModelNotReadyError")
}

// NewModelNotReadyError は新しいModelNotReadyErrorを作成し、スタックトレースを付与します。
func NewModelNotReadyError(modelName, method string) error {
	err := &ModelNotReadyError{ModelName: modelName, Method: method, FitMethod: "Recalculate"}
	return errors.WithStack(err)
}

// NewNotFittedError は変換器向けのModelNotReadyErrorを作成し、スタックトレースを付与します。
func NewNotFittedError(modelName, method string) error {
	err := &ModelNotReadyError{ModelName: modelName, Method: method, FitMethod: "Fit"}
	return errors.WithStack(err)
}

// DataError は入力データが不正な場合のエラーです。
// 系列長の不一致、空の入力、補完できない欠測値などを示します。
// ExpectedとGotは長さの不一致のときだけ設定されます。
type DataError struct {
	Op       string
	Reason   string
	Expected int
	Got      int
}

func (e *DataError) Error() string {
	if e.Expected != e.Got {
		return fmt.Sprintf("golinreg: %s: %s. Expected %d, got %d", e.Op, e.Reason, e.Expected, e.Got)
	}
	return fmt.Sprintf("golinreg: %s: %s", e.Op, e.Reason)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DataError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("reason", e.Reason).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Str("type", "DataError")
}

// NewDataError は新しいDataErrorを作成し、スタックトレースを付与します。
func NewDataError(op, reason string) error {
	err := &DataError{Op: op, Reason: reason}
	return errors.WithStack(err)
}

// NewLengthMismatchError は系列長の不一致を表すDataErrorを作成し、スタックトレースを付与します。
func NewLengthMismatchError(op string, expected, got int) error {
	err := &DataError{Op: op, Reason: "length mismatch between predictors and targets", Expected: expected, Got: got}
	return errors.WithStack(err)
}

// InsufficientDataError はデータ量が回帰直線を決定するのに足りない場合のエラーです。
// 観測数が2未満、または説明変数の分散がゼロのときに発生します。
type InsufficientDataError struct {
	Op       string
	NSamples int
	Reason   string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("golinreg: %s: insufficient data: %s (n=%d)", e.Op, e.Reason, e.NSamples)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InsufficientDataError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("n_samples", e.NSamples).
		Str("reason", e.Reason).
		Str("type", "InsufficientDataError")
}

// NewInsufficientDataError は新しいInsufficientDataErrorを作成し、スタックトレースを付与します。
func NewInsufficientDataError(op string, nSamples int, reason string) error {
	err := &InsufficientDataError{Op: op, NSamples: nSamples, Reason: reason}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}
