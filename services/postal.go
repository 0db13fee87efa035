package services

import (
	"os"
	"time"

	"virtualoffice-backend/utils"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

type zipcloudResponse struct {
	Results []struct {
		Address1 string `json:"address1"`
		Address2 string `json:"address2"`
		Address3 string `json:"address3"`
	} `json:"results"`
}

// AddressLookup resolves a 7-digit postal code to a single address string
// for form prefill. Strictly best-effort: any failure yields an empty
// string and the form field stays blank.
type AddressLookup struct {
	client *resty.Client
	logger *zap.Logger
}

func NewAddressLookup(logger *zap.Logger) *AddressLookup {
	baseURL := os.Getenv("POSTAL_API_URL")
	if baseURL == "" {
		baseURL = "https://zipcloud.ibsnet.co.jp/api/search"
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(5 * time.Second)
	return &AddressLookup{client: client, logger: logger}
}

func (a *AddressLookup) Lookup(postalCode string) string {
	code := utils.NormalizePostalCode(postalCode)
	if !utils.ValidatePostalCode(code) {
		return ""
	}

	var result zipcloudResponse
	resp, err := a.client.R().
		SetQueryParam("zipcode", code).
		SetResult(&result).
		Get("")
	if err != nil || !resp.IsSuccess() {
		a.logger.Debug("postal lookup failed", zap.String("code", code), zap.Error(err))
		return ""
	}
	if len(result.Results) == 0 {
		return ""
	}

	r := result.Results[0]
	return r.Address1 + r.Address2 + r.Address3
}
