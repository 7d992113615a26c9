package api

import (
	"context"
	"net/http"
)

// AppConfig is server-held application configuration shared by all clients
// of a workspace.
type AppConfig struct {
	AppName  string `json:"appName"`
	Language string `json:"language"`
	Theme    string `json:"theme"`
}

type appConfigWire struct {
	AppName  string `json:"app_name"`
	Language string `json:"language"`
	Theme    string `json:"theme"`
}

func normalizeAppConfig(w appConfigWire) AppConfig {
	return AppConfig{AppName: w.AppName, Language: w.Language, Theme: w.Theme}
}

func (c *Client) GetAppConfig(ctx context.Context) (AppConfig, error) {
	var w appConfigWire
	if err := c.do(ctx, http.MethodGet, "/config/app", nil, &w); err != nil {
		return AppConfig{}, err
	}
	return normalizeAppConfig(w), nil
}

func (c *Client) UpdateAppConfig(ctx context.Context, in UpdateAppConfigInput) (AppConfig, error) {
	if err := c.validateInput(in); err != nil {
		return AppConfig{}, err
	}
	var w appConfigWire
	if err := c.do(ctx, http.MethodPut, "/config/app", in, &w); err != nil {
		return AppConfig{}, err
	}
	return normalizeAppConfig(w), nil
}
