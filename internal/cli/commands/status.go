package commands

import (
	"StationAdmin/internal/cli/api"
	"StationAdmin/internal/config"
	"StationAdmin/internal/routepath"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type dataResponse struct {
	Result string `json:"result"`
}

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show who the server thinks you are" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	token, _ := tokenStore(cfg).Load()
	resp, body, err := api.PostJSON(ctx, endpoint(cfg, routepath.APIUserStatus), struct{}{}, token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var dr dataResponse
	if err := json.Unmarshal(body, &dr); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintln(Out, "Status:", dr.Result)
	return nil
}

type probeCmd struct{}

func (probeCmd) Name() string        { return "probe" }
func (probeCmd) Description() string { return "Query one row of Stations and print the raw JSON" }
func (probeCmd) Usage() string       { return "probe" }

func (probeCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	token, _ := tokenStore(cfg).Load()
	resp, body, err := api.Get(ctx, endpoint(cfg, routepath.APITestDB), token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	fmt.Fprintln(Out, strings.TrimSpace(string(body)))
	return nil
}

func init() {
	RegisterCmd(statusCmd{})
	RegisterCmd(probeCmd{})
}
