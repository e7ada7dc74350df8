package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	ptslv1 "github.com/louisbranch/ptsl/api/ptsl/v1"
)

// checkHostReady probes liveness with no session attached. The host
// answers this command before authentication. A Failed status means
// "remote not ready" and aborts construction; it is not a command error.
func (c *Client) checkHostReady(ctx context.Context) error {
	res, err := c.send(ctx, ptslv1.CommandHostReadyCheck, "")
	if err != nil {
		return &DialError{Stage: DialStageConnect, Err: err}
	}
	if res.Header.Status == ptslv1.StatusFailed {
		return &DialError{
			Stage: DialStageReady,
			Err:   fmt.Errorf("host reported not ready: %s", res.ResponseErrorJSON),
		}
	}
	return nil
}

// authenticate performs the handshake selected by cfg and stores the
// returned session id. A handshake the host declines leaves the session
// empty without failing construction.
func (c *Client) authenticate(ctx context.Context, cfg Config) error {
	if cfg.TokenFile != "" {
		return c.authorizeConnection(ctx, cfg.TokenFile)
	}
	return c.registerConnection(ctx, cfg.CompanyName, cfg.ApplicationName)
}

func (c *Client) authorizeConnection(ctx context.Context, tokenFile string) error {
	token, err := os.ReadFile(tokenFile)
	if err != nil {
		return &DialError{Stage: DialStageAuthorize, Err: fmt.Errorf("read api token: %w", err)}
	}

	body, err := json.Marshal(&ptslv1.AuthorizeConnectionRequestBody{AuthString: string(token)})
	if err != nil {
		return &DialError{Stage: DialStageAuthorize, Err: err}
	}

	res, err := c.send(ctx, ptslv1.CommandAuthorizeConnection, string(body))
	if err != nil {
		return &DialError{Stage: DialStageConnect, Err: err}
	}
	if res.Header.Status == ptslv1.StatusFailed {
		log.Printf("ptsl: authorization failed: %s", res.ResponseErrorJSON)
		return nil
	}

	var auth ptslv1.AuthorizeConnectionResponseBody
	if err := json.Unmarshal([]byte(res.ResponseBodyJSON), &auth); err != nil {
		return &DialError{Stage: DialStageAuthorize, Err: fmt.Errorf("parse authorization response: %w", err)}
	}
	if !auth.IsAuthorized {
		log.Printf("ptsl: connection did not authorize, message: %s", auth.Message)
		return nil
	}
	c.sessionID = auth.SessionID
	return nil
}

func (c *Client) registerConnection(ctx context.Context, company, application string) error {
	body, err := json.Marshal(&ptslv1.RegisterConnectionRequestBody{
		CompanyName:     company,
		ApplicationName: application,
	})
	if err != nil {
		return &DialError{Stage: DialStageAuthorize, Err: err}
	}

	res, err := c.send(ctx, ptslv1.CommandRegisterConnection, string(body))
	if err != nil {
		return &DialError{Stage: DialStageConnect, Err: err}
	}
	if res.Header.Status == ptslv1.StatusFailed {
		log.Printf("ptsl: registration failed: %s", res.ResponseErrorJSON)
		return nil
	}

	var reg ptslv1.RegisterConnectionResponseBody
	if err := json.Unmarshal([]byte(res.ResponseBodyJSON), &reg); err != nil {
		return &DialError{Stage: DialStageAuthorize, Err: fmt.Errorf("parse registration response: %w", err)}
	}
	if !reg.IsAuthorized {
		log.Printf("ptsl: connection did not register, message: %s", reg.Message)
		return nil
	}
	c.sessionID = reg.SessionID
	return nil
}
