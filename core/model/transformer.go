package model

// SeriesTransformer は一次元の系列に対するデータ変換のインターフェース
type SeriesTransformer interface {
	// Fit は変換に必要なパラメータを学習する
	Fit(values []float64) error

	// Transform は系列を変換したコピーを返す
	Transform(values []float64) ([]float64, error)

	// FitTransform はFitとTransformを同時に実行する
	FitTransform(values []float64) ([]float64, error)
}
