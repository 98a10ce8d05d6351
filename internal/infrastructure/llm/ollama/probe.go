package ollama

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Probe はOllamaエンドポイントの死活監視
// 結果はTTL付きでキャッシュし、決定のたびのHTTP往復を避ける
type Probe struct {
	baseURL string
	client  *http.Client
	ttl     time.Duration

	mu          sync.Mutex
	available   bool
	lastChecked time.Time
}

// NewProbe は新しいProbeを作成
// timeoutは監視リクエスト自体の上限で、無期限ブロックを防ぐ
func NewProbe(baseURL string, timeout, ttl time.Duration) *Probe {
	return &Probe{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		ttl:     ttl,
	}
}

// Available はローカルエンドポイントが利用可能かを返す
// 失敗はfalseとして扱い、エラーは返さない
func (p *Probe) Available(ctx context.Context) bool {
	p.mu.Lock()
	if !p.lastChecked.IsZero() && time.Since(p.lastChecked) < p.ttl {
		available := p.available
		p.mu.Unlock()
		return available
	}
	p.mu.Unlock()

	available := p.check(ctx)

	p.mu.Lock()
	p.available = available
	p.lastChecked = time.Now()
	p.mu.Unlock()

	return available
}

// check は実際の死活確認を行う
func (p *Probe) check(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, "GET", p.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
