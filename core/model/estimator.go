package model

// Fitter は係数を再計算できるモデルのインターフェース
type Fitter interface {
	// Recalculate は保持しているデータから係数を計算し直す
	Recalculate() error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// MakePrediction は説明変数の値に対する予測を行う
	MakePrediction(predictor float64) (float64, error)
}

// Regressor は単回帰モデルのインターフェース
type Regressor interface {
	Fitter
	Predictor
	// Slope は計算された傾きを返す
	Slope() float64
	// Intercept は計算された切片を返す
	Intercept() float64
	// Score はモデルの決定係数（R²）を計算する
	Score(predictors, targets []float64) (float64, error)
}
