package middleware

import (
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"dayflow/config"
	"dayflow/pkg/authclient"
	"dayflow/pkg/log"
)

type Middleware struct {
	l        log.Logger
	verifier authclient.Verifier
	cfg      config.AuthConfig

	tokenCache *expirable.LRU[string, authclient.User]
	limiters   *expirable.LRU[string, *rate.Limiter]
}

func New(l log.Logger, verifier authclient.Verifier, cfg config.AuthConfig) Middleware {
	size := cfg.CacheSize
	if size <= 0 {
		size = 1024
	}
	return Middleware{
		l:          l,
		verifier:   verifier,
		cfg:        cfg,
		tokenCache: expirable.NewLRU[string, authclient.User](size, nil, cfg.CacheTTL),
		limiters:   expirable.NewLRU[string, *rate.Limiter](size, nil, 0),
	}
}
