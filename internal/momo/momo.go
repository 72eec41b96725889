package momo

import (
	"errors"
	"time"
	
	"github.com/katatrina/momo-gateway/internal/util"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"resty.dev/v3"
)

const (
	defaultRequestTimeout = 30 * time.Second
	contentTypeJSON       = "application/json; charset=UTF-8"
)

// MerchantConfig holds the static merchant credentials issued by MoMo.
// It is loaded once at startup and never mutated, so a single value can be
// shared by every request.
type MerchantConfig struct {
	PartnerCode string
	AccessKey   string
	SecretKey   string
	RequestType string
	NotifyURL   string
	ReturnURL   string
	GatewayURL  string
}

// NewMerchantConfig copies the MoMo settings out of the application config.
func NewMerchantConfig(config *util.Config) MerchantConfig {
	return MerchantConfig{
		PartnerCode: config.MomoPartnerCode,
		AccessKey:   config.MomoAccessKey,
		SecretKey:   config.MomoSecretKey,
		RequestType: config.MomoRequestType,
		NotifyURL:   config.MomoNotifyURL,
		ReturnURL:   config.MomoReturnURL,
		GatewayURL:  config.MomoGatewayURL,
	}
}

func (m MerchantConfig) Validate() error {
	switch {
	case m.PartnerCode == "":
		return errors.New("momo partner code is required")
	case m.AccessKey == "":
		return errors.New("momo access key is required")
	case m.SecretKey == "":
		return errors.New("momo secret key is required")
	case m.GatewayURL == "":
		return errors.New("momo gateway url is required")
	}
	
	return nil
}

type MomoService struct {
	merchant MerchantConfig
	builder  *RequestBuilder
	client   *resty.Client
	timeout  time.Duration
	logger   zerolog.Logger
}

type ServiceOption func(*MomoService)

// WithTimeout bounds every outbound call to the gateway.
func WithTimeout(timeout time.Duration) ServiceOption {
	return func(s *MomoService) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// WithRestyClient replaces the resty client used to reach the gateway.
// The service timeout is still applied to it.
func WithRestyClient(client *resty.Client) ServiceOption {
	return func(s *MomoService) {
		if client != nil {
			s.client = client
		}
	}
}

func WithLogger(logger zerolog.Logger) ServiceOption {
	return func(s *MomoService) {
		s.logger = logger
	}
}

func NewMomoService(merchant MerchantConfig, opts ...ServiceOption) *MomoService {
	service := &MomoService{
		merchant: merchant,
		builder:  NewRequestBuilder(merchant),
		client:   resty.New(),
		timeout:  defaultRequestTimeout,
		logger:   log.Logger,
	}
	
	for _, opt := range opts {
		opt(service)
	}
	
	service.client.SetTimeout(service.timeout)
	
	return service
}
