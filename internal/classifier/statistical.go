package classifier

import (
	"fmt"

	"github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
	ort "github.com/yalue/onnxruntime_go"

	"feedback-insights-go/internal/types"
)

// Predictor is the pretrained statistical classifier for code-switched text.
type Predictor interface {
	Predict(text string) (types.SentimentLabel, error)
}

// ModelConfig locates the pretrained artifacts. Both the model and the
// tokenizer must already be trained; nothing is fitted at runtime.
type ModelConfig struct {
	OrtLibraryPath string
	ModelPath      string
	TokenizerPath  string
	Labels         []string
	MaxSeqLen      int
}

// Model wraps an ONNX session and its tokenizer. Loaded once at startup,
// read-only afterwards, safe for concurrent Predict calls.
type Model struct {
	tk      *tokenizer.Tokenizer
	session *ort.DynamicAdvancedSession
	labels  []types.SentimentLabel
	maxSeq  int
}

// LoadModel initializes the onnxruntime environment, the tokenizer and the
// inference session. The configured label list is validated up front so that
// raw model output can never leak an unrecognized label.
func LoadModel(cfg ModelConfig) (*Model, error) {
	if len(cfg.Labels) == 0 {
		return nil, fmt.Errorf("model label list is empty")
	}
	labels := make([]types.SentimentLabel, len(cfg.Labels))
	for i, raw := range cfg.Labels {
		l, err := types.ParseLabel(raw)
		if err != nil {
			return nil, fmt.Errorf("model labels: %w", err)
		}
		labels[i] = l
	}

	if cfg.OrtLibraryPath != "" {
		ort.SetSharedLibraryPath(cfg.OrtLibraryPath)
	}
	if !ort.IsInitialized() {
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("init onnxruntime: %w", err)
		}
	}

	tk, err := pretrained.FromFile(cfg.TokenizerPath)
	if err != nil {
		return nil, fmt.Errorf("load tokenizer: %w", err)
	}
	session, err := ort.NewDynamicAdvancedSession(cfg.ModelPath,
		[]string{"input_ids", "attention_mask"}, []string{"logits"}, nil)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}

	maxSeq := cfg.MaxSeqLen
	if maxSeq <= 0 {
		maxSeq = 128
	}
	return &Model{tk: tk, session: session, labels: labels, maxSeq: maxSeq}, nil
}

// Predict vectorizes text and returns the argmax class. Errors are not
// retried; a failing model call fails the whole batch.
func (m *Model) Predict(text string) (types.SentimentLabel, error) {
	en, err := m.tk.EncodeSingle(text, true)
	if err != nil {
		return "", fmt.Errorf("vectorize: %w", err)
	}
	ids := en.Ids
	if len(ids) > m.maxSeq {
		ids = ids[:m.maxSeq]
	}
	if len(ids) == 0 {
		// some tokenizers emit nothing for whitespace-only input
		ids = []int{0}
	}

	inputIDs := make([]int64, len(ids))
	mask := make([]int64, len(ids))
	for i, id := range ids {
		inputIDs[i] = int64(id)
		mask[i] = 1
	}

	shape := ort.NewShape(1, int64(len(ids)))
	inT, err := ort.NewTensor(shape, inputIDs)
	if err != nil {
		return "", fmt.Errorf("input tensor: %w", err)
	}
	defer inT.Destroy()
	maskT, err := ort.NewTensor(shape, mask)
	if err != nil {
		return "", fmt.Errorf("mask tensor: %w", err)
	}
	defer maskT.Destroy()
	outT, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(len(m.labels))))
	if err != nil {
		return "", fmt.Errorf("output tensor: %w", err)
	}
	defer outT.Destroy()

	if err := m.session.Run([]ort.Value{inT, maskT}, []ort.Value{outT}); err != nil {
		return "", fmt.Errorf("predict: %w", err)
	}

	logits := outT.GetData()
	best := 0
	for i := range logits {
		if logits[i] > logits[best] {
			best = i
		}
	}
	return m.labels[best], nil
}

// Close releases the inference session.
func (m *Model) Close() error {
	if m == nil || m.session == nil {
		return nil
	}
	err := m.session.Destroy()
	m.session = nil
	return err
}
