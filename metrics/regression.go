package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/golinreg/pkg/errors"
)

// MSE は平均二乗誤差（Mean Squared Error）を計算する
func MSE(yTrue, yPred []float64) (float64, error) {
	// 入力検証
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewDataError("MSE", "empty sequence")
	}

	if len(yPred) != n {
		return 0, errors.NewLengthMismatchError("MSE", n, len(yPred))
	}

	// MSE = (1/n) * Σ(yTrue - yPred)²
	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue[i] - yPred[i]
		sum += diff * diff
	}

	return sum / float64(n), nil
}

// RMSE は平方根平均二乗誤差（Root Mean Squared Error）を計算する
func RMSE(yTrue, yPred []float64) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE は平均絶対誤差（Mean Absolute Error）を計算する
func MAE(yTrue, yPred []float64) (float64, error) {
	// 入力検証
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewDataError("MAE", "empty sequence")
	}

	if len(yPred) != n {
		return 0, errors.NewLengthMismatchError("MAE", n, len(yPred))
	}

	// MAE = (1/n) * Σ|yTrue - yPred|
	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(yTrue[i] - yPred[i])
	}

	return sum / float64(n), nil
}

// R2Score は決定係数（R²）を計算する
func R2Score(yTrue, yPred []float64) (float64, error) {
	// 入力検証
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewDataError("R2Score", "empty sequence")
	}

	if len(yPred) != n {
		return 0, errors.NewLengthMismatchError("R2Score", n, len(yPred))
	}

	// 全変動が0の場合（すべてのyTrueが同じ値）
	yMean := stat.Mean(yTrue, nil)
	var tss float64
	for i := 0; i < n; i++ {
		diff := yTrue[i] - yMean
		tss += diff * diff
	}
	if tss == 0 {
		return 0, errors.Newf("R2Score: total sum of squares is zero (no variance in yTrue)")
	}

	// R² = 1 - RSS/TSS
	return stat.RSquaredFrom(yPred, yTrue, nil), nil
}

// PearsonR はピアソンの積率相関係数を計算する
// どちらかの系列の分散がゼロの場合はNaNを返し、UndefinedMetricWarningを発生させる
func PearsonR(x, y []float64) (float64, error) {
	// 入力検証
	n := len(x)
	if n == 0 {
		return 0, errors.NewDataError("PearsonR", "empty sequence")
	}

	if len(y) != n {
		return 0, errors.NewLengthMismatchError("PearsonR", n, len(y))
	}

	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) {
		errors.Warn(errors.NewUndefinedMetricWarning("PearsonR", "zero variance", math.NaN()))
	}

	return r, nil
}
