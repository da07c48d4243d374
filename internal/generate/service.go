// Package generate produces synthetic companies and invoice line items with
// an OpenAI completion model.
//
// The exclusion lists passed to the generators are advisory: the model is
// asked to avoid existing IDs and SKUs but is not guaranteed to, so callers
// must still treat duplicates as conflicts at the storage boundary. Every
// generated record is validated through the pkg/models factories before it
// is returned; records that fail validation are dropped and logged.
package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
	"github.com/shopspring/decimal"

	"invoiceforge/internal/logger"
	"invoiceforge/pkg/models"
)

// Sampling settings for creative record generation. High temperature with
// frequency and presence penalties keeps repeated runs from converging on
// the same handful of company names.
const (
	generationTemperature      = 1.2
	generationFrequencyPenalty = 1.0
	generationPresencePenalty  = 1.0
	maxResponseTokens          = 4000
)

// Service generates synthetic records through a chat completion model.
type Service struct {
	client *openai.Client
	model  string
	log    zerolog.Logger
}

// New creates a generation service. An empty model selects GPT-4o mini.
func New(client *openai.Client, model string) *Service {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Service{
		client: client,
		model:  model,
		log:    logger.WithComponent("generate"),
	}
}

type addressRecord struct {
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	Province     string `json:"province"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
}

type companyRecord struct {
	CompanyID       string         `json:"company_id"`
	CompanyName     string         `json:"company_name"`
	AddressBilling  addressRecord  `json:"address_billing"`
	AddressShipping *addressRecord `json:"address_shipping"`
	PhoneNumber     string         `json:"phone_number"`
	Email           string         `json:"email"`
	Website         string         `json:"website"`
}

type lineItemRecord struct {
	ItemSKU   string          `json:"item_sku"`
	ItemInfo  string          `json:"item_info"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Companies generates count synthetic companies. Existing company IDs are
// passed as an advisory exclusion list.
func (s *Service) Companies(ctx context.Context, count int, exclude []string) ([]models.Company, error) {
	prompt := fmt.Sprintf(`Generate %d creative real life companies as a JSON array.
Generate a unique creative company ID based on each company name.
Generate unique Canada addresses with valid Canadian postal codes.
Generate a unique email address and website URL based on each company name.
%sUse this JSON schema for each company: %s

Answer only with the JSON array.`, count, exclusionClause("company IDs", exclude), companySchema)

	raw, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var records []companyRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		s.log.Warn().Err(err).Str("payload", string(raw)).Msg("Failed to decode generated companies")
		return nil, fmt.Errorf("decoding companies: %w", ErrBadPayload)
	}

	companies := make([]models.Company, 0, len(records))
	for _, rec := range records {
		company, err := buildCompany(rec)
		if err != nil {
			s.log.Warn().
				Err(err).
				Str("company_id", rec.CompanyID).
				Str("company_name", rec.CompanyName).
				Msg("Dropping generated company that failed validation")
			continue
		}
		companies = append(companies, company)
	}

	if len(companies) == 0 {
		return nil, fmt.Errorf("no valid companies in %d generated records: %w", len(records), ErrBadPayload)
	}

	s.log.Info().
		Int("requested", count).
		Int("generated", len(records)).
		Int("valid", len(companies)).
		Msg("Generated companies")

	return companies, nil
}

// LineItems generates count synthetic invoice line items. Existing SKUs are
// passed as an advisory exclusion list.
func (s *Service) LineItems(ctx context.Context, count int, exclude []string) ([]models.LineItem, error) {
	prompt := fmt.Sprintf(`Generate %d computer equipment invoice line items as a JSON array.
Avoid duplicating item_sku and item_info between items.
%sUse this JSON schema for each invoice line item: %s

Answer only with the JSON array.`, count, exclusionClause("item SKUs", exclude), lineItemSchema)

	raw, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var records []lineItemRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		s.log.Warn().Err(err).Str("payload", string(raw)).Msg("Failed to decode generated invoice items")
		return nil, fmt.Errorf("decoding invoice items: %w", ErrBadPayload)
	}

	items := make([]models.LineItem, 0, len(records))
	for _, rec := range records {
		item, err := buildLineItem(rec)
		if err != nil {
			s.log.Warn().
				Err(err).
				Str("item_sku", rec.ItemSKU).
				Msg("Dropping generated invoice item that failed validation")
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no valid invoice items in %d generated records: %w", len(records), ErrBadPayload)
	}

	s.log.Info().
		Int("requested", count).
		Int("generated", len(records)).
		Int("valid", len(items)).
		Msg("Generated invoice items")

	return items, nil
}

// complete sends a single-message completion request and returns the
// response content with any markdown fences stripped.
func (s *Service) complete(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature:      generationTemperature,
		FrequencyPenalty: generationFrequencyPenalty,
		PresencePenalty:  generationPresencePenalty,
		MaxTokens:        maxResponseTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrNoChoices
	}

	s.log.Debug().
		Int("total_tokens", resp.Usage.TotalTokens).
		Msg("Completion request finished")

	return []byte(stripFences(resp.Choices[0].Message.Content)), nil
}

// stripFences removes a surrounding markdown code block, which some models
// wrap JSON answers in.
func stripFences(response string) string {
	cleaned := strings.TrimSpace(response)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
	}
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

func exclusionClause(kind string, exclude []string) string {
	if len(exclude) == 0 {
		return ""
	}
	return fmt.Sprintf("Avoid these existing %s: %s.\n", kind, strings.Join(exclude, ", "))
}

func buildCompany(rec companyRecord) (models.Company, error) {
	billing, err := buildAddress(rec.AddressBilling)
	if err != nil {
		return models.Company{}, err
	}

	var shipping *models.Address
	if rec.AddressShipping != nil {
		addr, err := buildAddress(*rec.AddressShipping)
		if err != nil {
			return models.Company{}, err
		}
		shipping = &addr
	}

	return models.NewCompany(rec.CompanyID, rec.CompanyName, billing, shipping,
		rec.PhoneNumber, rec.Email, rec.Website)
}

func buildAddress(rec addressRecord) (models.Address, error) {
	return models.NewAddress(rec.AddressLine1, rec.AddressLine2, rec.City,
		rec.Province, rec.PostalCode, rec.Country)
}

func buildLineItem(rec lineItemRecord) (models.LineItem, error) {
	return models.NewLineItem(rec.ItemSKU, rec.ItemInfo, rec.Quantity, rec.UnitPrice)
}
