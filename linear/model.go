package linear

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/YuminosukeSato/golinreg/core/model"
	"github.com/YuminosukeSato/golinreg/metrics"
	"github.com/YuminosukeSato/golinreg/pkg/errors"
	"github.com/YuminosukeSato/golinreg/pkg/log"
	"github.com/YuminosukeSato/golinreg/preprocessing"
	"gonum.org/v1/gonum/stat"
)

// maxSummaryValues は文字列表現に表示する系列の最大要素数
const maxSummaryValues = 10

// Pair は説明変数と目的変数の組
type Pair struct {
	Predictor float64
	Target    float64
}

// LinearModel は単回帰モデル
//
// 説明変数の系列と目的変数の系列の組からOLS（最小二乗法）で
// 傾きと切片を推定する。欠損値（NaN）は既定で系列平均により補完される。
//
// 使用例:
//
//	lm, err := linear.New([]float64{1, 2, 3, 4, 5}, []float64{15, 25, 35, 45, 55})
//	if err != nil {
//		// エラー処理
//	}
//	y, _ := lm.MakePrediction(6) // 65
type LinearModel struct {
	model.BaseEstimator // 計算状態を管理

	predictors []float64 // 説明変数の系列（NaNは欠損値）
	targets    []float64 // 目的変数の系列

	slope     float64 // 傾き
	intercept float64 // 切片
	xMean     float64 // 説明変数の平均
	yMean     float64 // 目的変数の平均
	r         float64 // ピアソン相関係数

	imputeMissing bool       // 欠損値を系列平均で補完するか
	verbose       bool       // 変更操作時にログを出力するか
	logger        log.Logger // verbose時に使用するロガー
}

// New は2つの並列な系列から新しい単回帰モデルを作成する
//
// predictorsとtargetsは同じ長さで、少なくとも1要素が必要。入力はコピー
// されるため、呼び出し側の変更はモデルに影響しない。作成と同時に係数を
// 計算するため、観測が2未満または説明変数の分散がゼロの場合は
// InsufficientDataErrorを返す。
func New(predictors, targets []float64, opts ...Option) (*LinearModel, error) {
	if len(predictors) != len(targets) {
		return nil, errors.NewLengthMismatchError("LinearModel.New", len(predictors), len(targets))
	}
	if len(predictors) == 0 {
		return nil, errors.NewDataError("LinearModel.New", "empty predictors and targets")
	}

	lm := &LinearModel{
		predictors:    append([]float64(nil), predictors...),
		targets:       append([]float64(nil), targets...),
		imputeMissing: true,
		slope:         math.NaN(),
		intercept:     math.NaN(),
		xMean:         math.NaN(),
		yMean:         math.NaN(),
		r:             math.NaN(),
	}

	// オプションを適用
	for _, opt := range opts {
		opt(lm)
	}
	if lm.logger == nil {
		lm.logger = log.GetLoggerWithName("linear.model")
	}

	if err := lm.Recalculate(); err != nil {
		return nil, err
	}

	return lm, nil
}

// NewFromPairs は(説明変数, 目的変数)の組の列から新しい単回帰モデルを作成する
//
// 組を2つの並列な系列に分解してNewに委譲する。
func NewFromPairs(pairs []Pair, opts ...Option) (*LinearModel, error) {
	predictors := make([]float64, len(pairs))
	targets := make([]float64, len(pairs))
	for i, p := range pairs {
		predictors[i] = p.Predictor
		targets[i] = p.Target
	}
	return New(predictors, targets, opts...)
}

// Recalculate は現在のデータから傾きと切片を再計算する
//
// 計算前に欠損値の補完を行い、傾き、切片、各平均、相関係数を更新する。
// 系列の長さが一致しない場合はDataError、観測が2未満または説明変数の
// 分散がゼロの場合はInsufficientDataErrorを返す。エラー時は派生値が
// 未定義に戻る。データに変化がなければ何度呼んでも同じ結果になる。
func (lm *LinearModel) Recalculate() (err error) {
	defer errors.Recover(&err, "LinearModel.Recalculate")

	if len(lm.predictors) != len(lm.targets) {
		lm.clearDerived()
		return errors.NewLengthMismatchError("LinearModel.Recalculate", len(lm.predictors), len(lm.targets))
	}

	n := len(lm.predictors)
	if n < 2 {
		lm.clearDerived()
		return errors.NewInsufficientDataError("LinearModel.Recalculate", n, "need at least 2 observations")
	}

	if err := lm.imputeSequence(log.SequencePredictors, lm.predictors); err != nil {
		lm.clearDerived()
		return err
	}
	if err := lm.imputeSequence(log.SequenceTargets, lm.targets); err != nil {
		lm.clearDerived()
		return err
	}

	xMean := stat.Mean(lm.predictors, nil)
	yMean := stat.Mean(lm.targets, nil)

	// 偏差積和と偏差平方和を1パスで計算
	var sxy, sxx, syy float64
	for i := 0; i < n; i++ {
		dx := lm.predictors[i] - xMean
		dy := lm.targets[i] - yMean
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}

	// すべての説明変数が同じ値の場合、傾きは定義できない
	if sxx == 0 {
		lm.clearDerived()
		return errors.NewInsufficientDataError("LinearModel.Recalculate", n, "zero variance in predictors")
	}

	// slope = Sxy / Sxx、intercept = mean_y - slope * mean_x
	lm.slope = sxy / sxx
	lm.intercept = yMean - lm.slope*xMean
	lm.xMean = xMean
	lm.yMean = yMean
	// 目的変数の分散がゼロのときrはNaN
	lm.r = sxy / (math.Sqrt(sxx) * math.Sqrt(syy))
	lm.SetFitted()

	if lm.verbose {
		lm.logger.Debug("Recalculation finished",
			log.OperationKey, log.OperationRecalculate,
			log.SamplesKey, n,
			log.SlopeKey, lm.slope,
			log.InterceptKey, lm.intercept,
			log.RValueKey, lm.r)
	}

	return nil
}

// imputeSequence は系列内の欠損値を処理する。補完した値は系列に書き戻される。
func (lm *LinearModel) imputeSequence(name string, values []float64) error {
	missing := preprocessing.CountMissing(values)
	if missing == 0 {
		return nil
	}

	if !lm.imputeMissing {
		return errors.NewDataError("LinearModel.Recalculate",
			fmt.Sprintf("%d missing value(s) in %s with imputation disabled", missing, name))
	}

	imputer := preprocessing.NewMeanImputer()
	filled, err := imputer.FitTransform(values)
	if err != nil {
		return errors.Wrapf(err, "impute %s", name)
	}
	copy(values, filled)

	errors.Warn(errors.NewMissingValueWarning(name, missing, imputer.Mean))

	if lm.verbose {
		lm.logger.Warn("Imputed missing values with sequence mean",
			log.OperationKey, log.OperationImpute,
			log.SequenceKey, name,
			log.ImputedKey, missing)
	}

	return nil
}

// AddPredictors は説明変数の系列に値を追加する
//
// 追加後に2つの系列の長さが一致すれば係数を再計算し、そのエラーを返す。
// 一致しない場合はエラーを返さず、系列が釣り合うまでモデルは未計算状態になる。
func (lm *LinearModel) AddPredictors(values ...float64) error {
	lm.predictors = append(lm.predictors, values...)

	if len(lm.predictors) != len(lm.targets) {
		lm.BaseEstimator.Reset()
		if lm.verbose {
			lm.logger.Info("Appended predictors; sequences unbalanced",
				log.OperationKey, log.OperationAddPredictors,
				log.SamplesKey, len(values),
				log.PendingKey, len(lm.predictors)-len(lm.targets))
		}
		return nil
	}

	if lm.verbose {
		lm.logger.Info("Appended predictors",
			log.OperationKey, log.OperationAddPredictors,
			log.SamplesKey, len(values),
			log.PairsKey, len(lm.predictors))
	}
	return lm.Recalculate()
}

// AddTargets は目的変数の系列に値を追加する
//
// AddPredictorsと対称。追加後に長さが一致すれば係数を再計算する。
func (lm *LinearModel) AddTargets(values ...float64) error {
	lm.targets = append(lm.targets, values...)

	if len(lm.predictors) != len(lm.targets) {
		lm.BaseEstimator.Reset()
		if lm.verbose {
			lm.logger.Info("Appended targets; sequences unbalanced",
				log.OperationKey, log.OperationAddTargets,
				log.SamplesKey, len(values),
				log.PendingKey, len(lm.targets)-len(lm.predictors))
		}
		return nil
	}

	if lm.verbose {
		lm.logger.Info("Appended targets",
			log.OperationKey, log.OperationAddTargets,
			log.SamplesKey, len(values),
			log.PairsKey, len(lm.targets))
	}
	return lm.Recalculate()
}

// Reset は保持しているデータと派生値をすべて消去する
//
// 設定（補完フラグ、verbose、ロガー）は保持される。失敗しない。
// 再びデータを追加して再計算するまで予測はできない。
func (lm *LinearModel) Reset() {
	lm.predictors = nil
	lm.targets = nil
	lm.clearDerived()

	if lm.verbose {
		lm.logger.Info("Model reset", log.OperationKey, log.OperationReset)
	}
}

// clearDerived は派生値を未定義に戻し、計算状態を解除する
func (lm *LinearModel) clearDerived() {
	lm.slope = math.NaN()
	lm.intercept = math.NaN()
	lm.xMean = math.NaN()
	lm.yMean = math.NaN()
	lm.r = math.NaN()
	lm.BaseEstimator.Reset()
}

// MakePrediction は説明変数の値に対する目的変数の予測値を返す
//
// slope*predictor + intercept を返す。係数が未計算の場合は
// ModelNotReadyErrorを返す。モデルの状態は変更しない。
func (lm *LinearModel) MakePrediction(predictor float64) (float64, error) {
	if !lm.IsFitted() {
		return 0, errors.NewModelNotReadyError("LinearModel", "MakePrediction")
	}
	return lm.slope*predictor + lm.intercept, nil
}

// Score はモデルの決定係数（R²）を計算する
//
// 与えられた説明変数に対する予測値とtargetsを比較する。
func (lm *LinearModel) Score(predictors, targets []float64) (float64, error) {
	if !lm.IsFitted() {
		return 0, errors.NewModelNotReadyError("LinearModel", "Score")
	}
	if len(predictors) != len(targets) {
		return 0, errors.NewLengthMismatchError("LinearModel.Score", len(predictors), len(targets))
	}

	predicted := make([]float64, len(predictors))
	for i, x := range predictors {
		predicted[i] = lm.slope*x + lm.intercept
	}
	return metrics.R2Score(targets, predicted)
}

// Slope は計算された傾きを返す。未計算の場合はNaNを返す。
func (lm *LinearModel) Slope() float64 {
	if !lm.IsFitted() {
		return math.NaN()
	}
	return lm.slope
}

// Intercept は計算された切片を返す。未計算の場合はNaNを返す。
func (lm *LinearModel) Intercept() float64 {
	if !lm.IsFitted() {
		return math.NaN()
	}
	return lm.intercept
}

// XMean は説明変数の平均を返す。未計算の場合はNaNを返す。
func (lm *LinearModel) XMean() float64 {
	if !lm.IsFitted() {
		return math.NaN()
	}
	return lm.xMean
}

// YMean は目的変数の平均を返す。未計算の場合はNaNを返す。
func (lm *LinearModel) YMean() float64 {
	if !lm.IsFitted() {
		return math.NaN()
	}
	return lm.yMean
}

// R はピアソン相関係数を返す。未計算の場合はNaNを返す。
// 目的変数の分散がゼロの場合もNaNになる。
func (lm *LinearModel) R() float64 {
	if !lm.IsFitted() {
		return math.NaN()
	}
	return lm.r
}

// Predictors は説明変数系列のコピーを返す
func (lm *LinearModel) Predictors() []float64 {
	return append([]float64(nil), lm.predictors...)
}

// Targets は目的変数系列のコピーを返す
func (lm *LinearModel) Targets() []float64 {
	return append([]float64(nil), lm.targets...)
}

// Pairs は(説明変数, 目的変数)の組のコピーを返す
//
// 系列が釣り合っていない場合は短い方の長さまでを返す。
func (lm *LinearModel) Pairs() []Pair {
	n := len(lm.predictors)
	if len(lm.targets) < n {
		n = len(lm.targets)
	}
	pairs := make([]Pair, n)
	for i := 0; i < n; i++ {
		pairs[i] = Pair{Predictor: lm.predictors[i], Target: lm.targets[i]}
	}
	return pairs
}

// NObservations は保持している説明変数の数を返す
func (lm *LinearModel) NObservations() int {
	return len(lm.predictors)
}

// Summary はモデルの状態を人間が読める形式でwに書き出す
func (lm *LinearModel) Summary(w io.Writer) error {
	_, err := io.WriteString(w, lm.String())
	return err
}

// String はモデルの状態の文字列表現を返す
func (lm *LinearModel) String() string {
	state := "not ready"
	if lm.IsFitted() {
		state = "ready"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "LinearModel(n=%d, %s)\n", len(lm.predictors), state)
	fmt.Fprintf(&sb, "  predictors: %s\n", formatSequence(lm.predictors))
	fmt.Fprintf(&sb, "  targets:    %s\n", formatSequence(lm.targets))
	fmt.Fprintf(&sb, "  slope:      %g\n", lm.Slope())
	fmt.Fprintf(&sb, "  intercept:  %g\n", lm.Intercept())
	fmt.Fprintf(&sb, "  x mean:     %g\n", lm.XMean())
	fmt.Fprintf(&sb, "  y mean:     %g\n", lm.YMean())
	fmt.Fprintf(&sb, "  r:          %g\n", lm.R())
	return sb.String()
}

// formatSequence は系列を表示用に整形する。maxSummaryValuesを超える分は省略する。
func formatSequence(values []float64) string {
	if len(values) <= maxSummaryValues {
		return fmt.Sprintf("%v", values)
	}
	return fmt.Sprintf("%v... (%d total)", values[:maxSummaryValues], len(values))
}
