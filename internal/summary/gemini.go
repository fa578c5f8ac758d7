package summary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/disparbud-kebumen/wisata-dashboard-be/configs"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	zlog "github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// =============================================================================
// GEMINI NARRATIVE GENERATOR
// =============================================================================

// ErrEmptySummary dikembalikan bila model menjawab tanpa ringkasan.
var ErrEmptySummary = errors.New("model returned empty summary")

const systemPrompt = `Anda adalah analis statistik pariwisata Dinas Pariwisata Kabupaten Kebumen.
Tulis ringkasan naratif singkat (2-4 kalimat) dalam bahasa Indonesia formal berdasarkan data kunjungan yang diberikan.
Sebutkan total kunjungan, perbandingan wisatawan nusantara dan mancanegara, serta negara asal wisman terbanyak bila ada.
Jangan mengarang angka yang tidak ada di data.`

// GeminiGenerator membuat ringkasan naratif lewat Gemini dengan keluaran JSON terstruktur.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a new generator from config.
func NewGeminiGenerator(ctx context.Context, cfg configs.GeminiConfig) (*GeminiGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

// responseSchema memaksa model menjawab {"summary": "..."}.
func responseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary": {Type: genai.TypeString, Description: "Ringkasan naratif dalam bahasa Indonesia"},
		},
		Required: []string{"summary"},
	}
}

// Generate mengirim data terstruktur ke model dan memvalidasi jawabannya.
func (g *GeminiGenerator) Generate(ctx context.Context, input models.NarrativeInput) (string, error) {
	prompt, err := BuildPrompt(input)
	if err != nil {
		return "", err
	}

	result, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
			ResponseMIMEType:  "application/json",
			ResponseSchema:    responseSchema(),
			Temperature:       genai.Ptr[float32](0.4),
		},
	)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}

	summary, err := ParseResponse(result.Text())
	if err != nil {
		zlog.Warn().Err(err).Str("model", g.model).Msg("Summary: invalid model response")
		return "", err
	}
	return summary, nil
}

// BuildPrompt menyusun prompt pengguna berisi data kunjungan dalam bentuk JSON.
func BuildPrompt(input models.NarrativeInput) (string, error) {
	if input.Nationalities == nil {
		input.Nationalities = []models.WismanDetail{}
	}
	data, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal narrative input: %w", err)
	}
	return fmt.Sprintf("Data kunjungan %s bulan %s %d:\n%s", input.DestinationName, input.MonthName, input.Year, data), nil
}

// ParseResponse memvalidasi jawaban JSON model dan mengambil field summary.
func ParseResponse(text string) (string, error) {
	var out struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &out); err != nil {
		return "", fmt.Errorf("decode model response: %w", err)
	}
	s := strings.TrimSpace(out.Summary)
	if s == "" {
		return "", ErrEmptySummary
	}
	return s, nil
}
