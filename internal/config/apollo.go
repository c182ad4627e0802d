package config

import (
	"strconv"

	agollo "github.com/apolloconfig/agollo/v4"
	apconf "github.com/apolloconfig/agollo/v4/env/config"
	"github.com/apolloconfig/agollo/v4/storage"
)

// overrideFromApollo starts the Apollo client and overrides config values when
// the namespace defines them. Returns a closer to stop the client.
func overrideFromApollo(cfg *Config, store *Store) (func(), error) {
	if cfg.Apollo.Addrs == "" || cfg.Apollo.AppID == "" {
		configLogger.Sugar().Info("apollo: missing APOLLO_ADDRS or APOLLO_APP_ID; skip")
		return nil, nil
	}

	ns := cfg.Apollo.Namespace
	if ns == "" {
		ns = "application"
	}

	appCfg := &apconf.AppConfig{
		AppID:              cfg.Apollo.AppID,
		Cluster:            cfg.Apollo.Cluster,
		NamespaceName:      ns,
		IP:                 cfg.Apollo.Addrs,
		Secret:             cfg.Apollo.AccessKey,
	}

	client, err := agollo.StartWithConfig(func() (*apconf.AppConfig, error) { return appCfg, nil })
	if err != nil {
		return nil, err
	}

	applyApolloOverrides(client, ns, cfg)
	_ = store.UpdateValidated(cfg, map[string]bool{"apollo.init": true})

	client.AddChangeListener(&apolloListener{ns: ns, client: client, store: store})

	// agollo v4 exposes no stop API
	closer := func() {}
	return closer, nil
}

func applyApolloOverrides(client agollo.Client, namespace string, cfg *Config) {
	cache := client.GetConfigCache(namespace)
	if cache == nil {
		return
	}
	str := func(key string, dst *string) {
		if v, err := cache.Get(key); err == nil {
			if s, _ := v.(string); s != "" {
				*dst = s
			}
		}
	}
	num := func(key string, dst *int) {
		if v, err := cache.Get(key); err == nil {
			if s, _ := v.(string); s != "" {
				if n, err := strconv.Atoi(s); err == nil {
					*dst = n
				}
			}
		}
	}

	str("app.env", &cfg.AppEnv)
	str("server.addr", &cfg.Server.Addr)
	str("log.level", &cfg.Log.Level)
	str("log.format", &cfg.Log.Format)
	str("pg.url", &cfg.PG.URL)
	num("pg.max_open", &cfg.PG.MaxOpenConns)
	num("pg.max_idle", &cfg.PG.MaxIdleConns)
	str("jwt.hs_secret", &cfg.JWT.HSSecret)
	num("jwt.access_min", &cfg.JWT.AccessMin)
	num("jwt.refresh_days", &cfg.JWT.RefreshDays)
	num("contact.rate_window_sec", &cfg.Contact.RateWindowSec)
	num("contact.rate_limit", &cfg.Contact.RateLimit)
	str("redis.addr", &cfg.Redis.Addr)
	str("redis.password", &cfg.Redis.Password)
	num("redis.db", &cfg.Redis.DB)
	str("mq.url", &cfg.MQ.URL)
	str("es.addrs", &cfg.ES.Addrs)
	str("es.username", &cfg.ES.Username)
	str("es.password", &cfg.ES.Password)
}

type apolloListener struct {
	ns     string
	client agollo.Client
	store  *Store
}

func (a *apolloListener) OnChange(e *storage.ChangeEvent) {
	configLogger.Sugar().Infof("apollo change: namespace=%s, changes=%d", e.Namespace, len(e.Changes))
	cur := a.store.Get()
	next := cloneConfig(cur)
	applyApolloOverrides(a.client, a.ns, next)
	changed := map[string]bool{}
	for k := range e.Changes {
		changed[k] = true
	}
	_ = a.store.UpdateValidated(next, changed)
}

func (a *apolloListener) OnNewestChange(e *storage.FullChangeEvent) {
	configLogger.Sugar().Infof("apollo newest change: namespace=%s, changes=%d", e.Namespace, len(e.Changes))
}
