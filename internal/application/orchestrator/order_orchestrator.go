package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/catalog"
	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/llm"
	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/order"
	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/routing"
)

// CategoryRouter はカテゴリ分類の抽象化
type CategoryRouter interface {
	Classify(ctx context.Context, text string) routing.CategoryDecision
}

// ModelRouter はティア選択の抽象化（純粋・I/Oなし）
type ModelRouter interface {
	SelectTier(text string) routing.TierDecision
}

// ServingRouter はエンドポイント選択の抽象化
type ServingRouter interface {
	SelectEndpoint(ctx context.Context, text string, hint routing.Sensitivity) routing.ServingDecision
}

// Backend は生成バックエンドの抽象化
type Backend interface {
	Generate(ctx context.Context, tier routing.ModelTier, endpoint routing.Endpoint, req llm.GenerateRequest) (llm.GenerateResponse, error)
}

// FallbackExtractor は決定論的抽出の抽象化
type FallbackExtractor interface {
	Extract(text string) []order.Item
}

// Recommender はおすすめ生成の抽象化（失敗しても注文は成立する）
type Recommender interface {
	Suggest(ctx context.Context, items []order.Item) (string, error)
}

// Options はオーケストレータの動作設定
type Options struct {
	MaxConcurrent   int           // バッチの同時実行上限
	DefaultDeadline time.Duration // 呼び出し側がデッドラインを持たない場合の既定値（0はなし）
}

// OrderOrchestrator は注文処理を統括する
// 1件の処理はカテゴリ→（ティア∥サービング）→抽出→検証の順で流れ、
// バッチは項目ごとに独立並行で処理される
type OrderOrchestrator struct {
	categoryRouter CategoryRouter
	modelRouter    ModelRouter
	servingRouter  ServingRouter
	backend        Backend
	catalog        catalog.Catalog
	fallback       FallbackExtractor
	recommender    Recommender // nilの場合はおすすめなし
	opts           Options
	logger         *slog.Logger
}

// NewOrderOrchestrator は新しいOrderOrchestratorを作成
func NewOrderOrchestrator(
	categoryRouter CategoryRouter,
	modelRouter ModelRouter,
	servingRouter ServingRouter,
	backend Backend,
	cat catalog.Catalog,
	fallback FallbackExtractor,
	recommender Recommender,
	opts Options,
	logger *slog.Logger,
) *OrderOrchestrator {
	if opts.MaxConcurrent < 1 {
		opts.MaxConcurrent = 10
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderOrchestrator{
		categoryRouter: categoryRouter,
		modelRouter:    modelRouter,
		servingRouter:  servingRouter,
		backend:        backend,
		catalog:        cat,
		fallback:       fallback,
		recommender:    recommender,
		opts:           opts,
		logger:         logger,
	}
}

// ProcessOrder は1件の注文を処理し、終端状態のResultを返す
// エラーはResultに畳み込まれ、panicや未分類のエラーで兄弟処理を壊さない
func (o *OrderOrchestrator) ProcessOrder(ctx context.Context, req order.Request) order.Result {
	if err := ctx.Err(); err != nil {
		return order.Failure(order.NewError(order.KindTimeout, req.Text(), err))
	}

	// 1. 入力検証・正規化
	text, verr := order.ValidateText(req.Text())
	if verr != nil {
		return order.Failure(verr)
	}

	// 2. カテゴリ分類（エラーを返さない契約）
	categoryDecision := o.categoryRouter.Classify(ctx, text)

	// 3. ティア選択とサービング選択は相互に独立なので並行実行し、
	//    両方の完了を待ってからバックエンドを呼ぶ
	var (
		tierDecision    routing.TierDecision
		servingDecision routing.ServingDecision
		wg              sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		tierDecision = o.modelRouter.SelectTier(text)
	}()
	go func() {
		defer wg.Done()
		servingDecision = o.servingRouter.SelectEndpoint(ctx, text, req.SensitivityHint())
	}()
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return order.Failure(order.NewError(order.KindTimeout, req.Text(), err))
	}

	// 4. 抽出（生成バックエンド → 失敗時はフォールバック）
	items, fallbackApplied := o.extractItems(ctx, text, categoryDecision, tierDecision, servingDecision)

	// デッドライン超過はフォールバック成功より優先して報告する
	if err := ctx.Err(); err != nil {
		terr := order.NewError(order.KindTimeout, req.Text(), err)
		if fallbackApplied {
			return order.FailureWithFallback(terr)
		}
		return order.Failure(terr)
	}

	// 5. カタログ検証
	validItems, missed := o.validateItems(items)

	// 最後の回復経路: 確定項目がなければフォールバック抽出を試す
	if len(validItems) == 0 && !fallbackApplied {
		var fbMissed []string
		validItems, fbMissed = o.validateItems(o.fallback.Extract(text))
		missed = append(missed, fbMissed...)
		fallbackApplied = true
	}

	// 未解決語が1つでも残る注文は確定しない
	// 部分的に解決できても黙って取りこぼさず、注文全体を失敗として返す
	if len(missed) > 0 {
		err := order.NewError(order.KindCatalogMiss, req.Text(),
			fmt.Errorf("unresolved catalog terms: %s", strings.Join(missed, ", ")))
		if fallbackApplied {
			return order.FailureWithFallback(err)
		}
		return order.Failure(err)
	}
	if len(validItems) == 0 {
		err := order.NewError(order.KindExtraction, req.Text(), fmt.Errorf("no valid items extracted"))
		if fallbackApplied {
			return order.FailureWithFallback(err)
		}
		return order.Failure(err)
	}

	payload := order.Payload{
		OrderID:  req.ID(),
		Items:    validItems,
		Category: categoryDecision,
		Tier:     tierDecision,
		Serving:  servingDecision,
	}

	// 6. おすすめ生成（失敗は注文成立を妨げない）
	if o.recommender != nil {
		if suggestion, err := o.recommender.Suggest(ctx, validItems); err == nil {
			payload.Suggestion = suggestion
		} else {
			o.logger.Debug("recommendation skipped", "error", err)
		}
	}

	o.logger.Info("order processed",
		"order_id", req.ID().String(),
		"category", categoryDecision.Category.String(),
		"tier", tierDecision.Tier.String(),
		"endpoint", servingDecision.Endpoint.String(),
		"items", len(validItems),
		"fallback", fallbackApplied)

	if fallbackApplied {
		return order.SuccessViaFallback(payload)
	}
	return order.Success(payload)
}

// ProcessBatch は複数の注文を並行処理する
// 結果列は投入順を保存し、1件の失敗が兄弟をキャンセルすることはない
// 全項目が終端状態に達したときのみ返る
func (o *OrderOrchestrator) ProcessBatch(ctx context.Context, reqs []order.Request) order.BatchResult {
	results := make([]order.Result, len(reqs))
	if len(reqs) == 0 {
		return order.NewBatchResult(results)
	}

	// 呼び出し側がデッドラインを持たない場合のみ既定値を適用
	if _, hasDeadline := ctx.Deadline(); !hasDeadline && o.opts.DefaultDeadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.opts.DefaultDeadline)
		defer cancel()
	}

	g := new(errgroup.Group)
	g.SetLimit(o.opts.MaxConcurrent)

	for i, req := range reqs {
		g.Go(func() error {
			itemCtx := ctx
			if req.Timeout() > 0 {
				var cancel context.CancelFunc
				itemCtx, cancel = context.WithTimeout(ctx, req.Timeout())
				defer cancel()
			}

			// 各ワーカーは自分のスロットのみに書き込む
			results[i] = o.ProcessOrder(itemCtx, req)
			return nil // 項目の失敗はスロットに記録し、兄弟へは伝播させない
		})
	}

	// ワーカーはエラーを返さないためWaitのエラーは常にnil
	_ = g.Wait()

	batch := order.NewBatchResult(results)

	o.logger.Info("batch processed",
		"total", batch.Len(),
		"success", batch.SuccessCount())

	return batch
}

// extractItems は生成バックエンドで項目を抽出し、失敗時はフォールバックに切り替える
// 戻り値の第2値はフォールバック抽出を使ったかを示す
func (o *OrderOrchestrator) extractItems(
	ctx context.Context,
	text string,
	category routing.CategoryDecision,
	tier routing.TierDecision,
	serving routing.ServingDecision,
) ([]order.Item, bool) {
	// 空入力、または分類段階でバックエンドが落ちている場合は
	// 生成抽出を試みず直接フォールバックへ
	if text == "" || category.Source == routing.SourceFallback {
		return o.fallback.Extract(text), true
	}

	resp, err := o.backend.Generate(ctx, tier.Tier, serving.Endpoint, llm.GenerateRequest{
		SystemPrompt: extractionSystemPrompt,
		Messages: []llm.Message{
			{Role: "user", Content: o.buildExtractionPrompt(text, category.Category)},
		},
		MaxTokens:   500,
		Temperature: 0.0,
	})
	if err != nil {
		o.logger.Warn("backend extraction failed, using fallback", "error", err)
		return o.fallback.Extract(text), true
	}

	items, err := parseExtractionResponse(resp.Content)
	if err != nil {
		o.logger.Warn("unparseable extraction response, using fallback", "error", err)
		return o.fallback.Extract(text), true
	}

	return items, false
}

// validateItems は抽出項目をカタログと照合し、確定項目と未解決語を返す
func (o *OrderOrchestrator) validateItems(items []order.Item) ([]order.Item, []string) {
	var valid []order.Item
	var missed []string

	for _, item := range items {
		catItem, ok := o.catalog.Lookup(item.MenuName)
		if !ok || !catItem.Available {
			missed = append(missed, item.MenuName)
			continue
		}

		if err := order.ValidateQuantity(item.Quantity); err != nil {
			item.Quantity = 1
		}

		// カタログが許容しないオプションは落とす
		if item.Size != "" && !catItem.HasSize(item.Size) {
			item.Size = ""
		}
		if item.Temperature != "" && !catItem.HasTemperature(item.Temperature) {
			item.Temperature = ""
		}

		item.MenuName = catItem.Name
		item.UnitPrice = catItem.PriceFor(item.Size)

		valid = append(valid, item)
	}

	return valid, missed
}

// buildExtractionPrompt は抽出用プロンプトを構築
func (o *OrderOrchestrator) buildExtractionPrompt(text string, category routing.Category) string {
	var menuNames []string
	if category == routing.CategoryUnknown {
		for _, c := range o.catalog.Categories() {
			for _, item := range o.catalog.ItemsByCategory(c) {
				menuNames = append(menuNames, item.Name)
			}
		}
	} else {
		for _, item := range o.catalog.ItemsByCategory(category) {
			menuNames = append(menuNames, item.Name)
		}
	}

	return fmt.Sprintf(`주문 내용: %s
사용 가능한 메뉴: %s

규칙:
1. menu는 반드시 사용 가능한 메뉴 중에서 선택
2. 수량이 명시되지 않으면 1로 설정
3. 사이즈는 Tall, Grande, Venti 중 하나 (없으면 null)
4. 온도는 Hot, Ice 중 하나 (없으면 null)
5. 유사한 메뉴 이름 매칭 (예: "아이스 아메리카노" → "아메리카노")`,
		text, strings.Join(menuNames, ", "))
}

// extractionSystemPrompt は抽出用システムプロンプト
const extractionSystemPrompt = `당신은 카페 주문 추출기입니다. 주문에서 메뉴와 수량을 추출하세요.

JSON만 출력하세요:
{"items": [{"menu": "메뉴명", "quantity": 1, "size": "Tall", "temperature": "Ice", "options": []}]}`
