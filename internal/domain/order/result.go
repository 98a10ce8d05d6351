package order

// Result は1件の注文処理の終端状態を表す
// 成功（Payload保持）か失敗（Error保持）のいずれか一方のみを持つ
type Result struct {
	payload         *Payload
	err             *Error
	fallbackApplied bool // フォールバック抽出を経由したか
}

// Success は成功Resultを作成
func Success(payload Payload) Result {
	return Result{payload: &payload}
}

// SuccessViaFallback はフォールバック経由の成功Resultを作成
func SuccessViaFallback(payload Payload) Result {
	return Result{payload: &payload, fallbackApplied: true}
}

// Failure は失敗Resultを作成
func Failure(err *Error) Result {
	return Result{err: err}
}

// FailureWithFallback はフォールバックを試行した上での失敗Resultを作成
func FailureWithFallback(err *Error) Result {
	return Result{err: err, fallbackApplied: true}
}

// IsSuccess は成功かを判定
func (r Result) IsSuccess() bool {
	return r.payload != nil
}

// Payload は成功時のペイロードを返す（失敗時はfalse）
func (r Result) Payload() (Payload, bool) {
	if r.payload == nil {
		return Payload{}, false
	}
	return *r.payload, true
}

// Err は失敗時のエラーを返す（成功時はnil）
func (r Result) Err() *Error {
	return r.err
}

// FallbackApplied はフォールバック抽出を経由したかを返す
func (r Result) FallbackApplied() bool {
	return r.fallbackApplied
}

// BatchResult はバッチ処理の結果を表す
// 結果列は投入順を保存し、長さは投入件数と常に一致する
type BatchResult struct {
	results []Result
}

// NewBatchResult は結果列からBatchResultを作成
func NewBatchResult(results []Result) BatchResult {
	return BatchResult{results: results}
}

// Results は結果列を返す
func (b BatchResult) Results() []Result {
	return b.results
}

// Len は結果件数を返す
func (b BatchResult) Len() int {
	return len(b.results)
}

// At はk番目の結果を返す
func (b BatchResult) At(i int) Result {
	return b.results[i]
}

// SuccessCount は成功件数を返す
func (b BatchResult) SuccessCount() int {
	count := 0
	for _, r := range b.results {
		if r.IsSuccess() {
			count++
		}
	}
	return count
}
