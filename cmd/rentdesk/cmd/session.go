package cmd

import (
	"fmt"

	"rentdesk-srv/config"
	"rentdesk-srv/internal/dashboard"
	"rentdesk-srv/pkg/log"
	"rentdesk-srv/pkg/querysync"
	"rentdesk-srv/pkg/rentapi"
)

type session struct {
	cfg config.DashboardConfig
	api rentapi.IClient
	l   log.Logger
}

// session resolves the dashboard config, letting flags win over file and environment.
func (o *globalOptions) session() (session, error) {
	cfg, err := config.LoadDashboard()
	if err != nil && o.APIURL == "" {
		return session{}, fmt.Errorf("load config: %w", err)
	}
	if o.APIURL != "" {
		cfg.APIURL = o.APIURL
	}
	if o.Token != "" {
		cfg.Token = o.Token
	}
	if o.PageSize > 0 {
		cfg.PageSize = o.PageSize
	}
	if o.Debounce != 0 {
		cfg.Debounce = o.Debounce
	}

	l := log.NewNop()
	if o.Verbose {
		l = log.Init(log.ZapConfig{
			Level:    "debug",
			Mode:     log.ModeDevelopment,
			Encoding: log.EncodingConsole,
		})
	}

	return session{
		cfg: cfg,
		api: rentapi.New(rentapi.Config{
			BaseURL: cfg.APIURL,
			Token:   cfg.Token,
			Timeout: cfg.Timeout,
		}),
		l: l,
	}, nil
}

func (s session) open(name string, nav querysync.Navigator) (dashboard.Table, error) {
	t, err := dashboard.Open(name, dashboard.Options{
		API:       s.api,
		Navigator: nav,
		Logger:    s.l,
		PageSize:  s.cfg.PageSize,
		Debounce:  s.cfg.Debounce,
	})
	if err != nil {
		return nil, fmt.Errorf("%w %q (run `rentdesk tables`)", err, name)
	}
	return t, nil
}
