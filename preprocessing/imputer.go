package preprocessing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/golinreg/core/model"
	"github.com/YuminosukeSato/golinreg/pkg/errors"
)

// MeanImputer は欠測値（NaN）を平均値で補完する変換器
// 系列に含まれる観測値（非NaN）の算術平均を学習し、欠測箇所をその値で置き換える
type MeanImputer struct {
	model.BaseEstimator

	// Mean は観測値の算術平均
	Mean float64

	// NObserved は平均の計算に使われた観測値の数
	NObserved int

	// NMissing は学習データに含まれていた欠測値の数
	NMissing int
}

// NewMeanImputer は新しいMeanImputerを作成する
//
// 戻り値:
//   - *MeanImputer: 新しいMeanImputerインスタンス
//
// 使用例:
//
//	imputer := preprocessing.NewMeanImputer()
//	filled, err := imputer.FitTransform(values)
func NewMeanImputer() *MeanImputer {
	return &MeanImputer{}
}

// Fit は系列の観測値から平均を計算する
//
// パラメータ:
//   - values: 学習する系列（NaNが欠測値）
//
// 戻り値:
//   - error: 系列が空、または全てNaNの場合のエラー
func (m *MeanImputer) Fit(values []float64) error {
	if len(values) == 0 {
		return errors.NewDataError("MeanImputer.Fit", "empty sequence")
	}

	observed := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			observed = append(observed, v)
		}
	}

	if len(observed) == 0 {
		return errors.NewDataError("MeanImputer.Fit", "all values are missing")
	}

	m.Mean = stat.Mean(observed, nil)
	m.NObserved = len(observed)
	m.NMissing = len(values) - len(observed)

	m.SetFitted()
	return nil
}

// Transform は学習済みの平均で欠測値を置き換えたコピーを返す
// 入力の系列自体は変更しない
//
// パラメータ:
//   - values: 変換する系列
//
// 戻り値:
//   - []float64: 補完された系列のコピー
//   - error: 未学習の場合のエラー
func (m *MeanImputer) Transform(values []float64) ([]float64, error) {
	if !m.IsFitted() {
		return nil, errors.NewNotFittedError("MeanImputer", "Transform")
	}

	result := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			result[i] = m.Mean
		} else {
			result[i] = v
		}
	}

	return result, nil
}

// FitTransform は系列で学習し、同じ系列を補完する
//
// パラメータ:
//   - values: 学習・変換する系列
//
// 戻り値:
//   - []float64: 補完された系列のコピー
//   - error: エラーが発生した場合
func (m *MeanImputer) FitTransform(values []float64) ([]float64, error) {
	if err := m.Fit(values); err != nil {
		return nil, err
	}
	return m.Transform(values)
}

// String は変換器の文字列表現を返す
func (m *MeanImputer) String() string {
	if !m.IsFitted() {
		return "MeanImputer()"
	}
	return fmt.Sprintf("MeanImputer(mean=%g, n_observed=%d, n_missing=%d)",
		m.Mean, m.NObserved, m.NMissing)
}

// CountMissing は系列に含まれる欠測値（NaN）の数を返す
func CountMissing(values []float64) int {
	count := 0
	for _, v := range values {
		if math.IsNaN(v) {
			count++
		}
	}
	return count
}
