package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/text/language"

	"github.com/zhuoyaazh/my-pixel-world/internal/apperror"
	"github.com/zhuoyaazh/my-pixel-world/internal/entity"
	"github.com/zhuoyaazh/my-pixel-world/internal/i18n"
)

var (
	errGameRequired = errors.New("game id is required")
	errCellRequired = errors.New("cell is required")
)

func (that *Server) handleNewGame(ctx context.Context, client *client, msg *Message) error {
	payloadReq, err := that.decodePayload(client, msg)
	if err != nil {
		return err
	}

	difficulty, err := entity.ParseDifficulty(payloadReq.Difficulty)
	if err != nil {
		return that.sendError(client, msg.Action, err.Error())
	}

	session, token, err := that.games.NewGame(ctx, difficulty)
	if err != nil {
		return that.sendFailure(client, msg.Action, err)
	}

	that.logger.Info("game created over websocket", "sessionID", session.ID)

	return that.sendMessage(client, msg.Action, ResponsePayload{
		Session: session,
		Token:   token,
		Status:  i18n.Status(that.language(client, payloadReq), session.State),
	})
}

func (that *Server) handleGameState(ctx context.Context, client *client, msg *Message) error {
	payloadReq, err := that.authorize(client, msg)
	if err != nil || payloadReq == nil {
		return err
	}

	session, err := that.games.GetGame(ctx, payloadReq.Game.ID)
	if err != nil {
		return that.sendFailure(client, msg.Action, err)
	}

	return that.sendSession(client, msg.Action, payloadReq, session)
}

func (that *Server) handleGameTurn(ctx context.Context, client *client, msg *Message) error {
	payloadReq, err := that.authorize(client, msg)
	if err != nil || payloadReq == nil {
		return err
	}

	if payloadReq.Cell == nil {
		return that.sendError(client, msg.Action, errCellRequired.Error())
	}

	session, err := that.games.MakeTurn(ctx, payloadReq.Game.ID, *payloadReq.Cell)
	if errors.Is(err, apperror.ErrInvalidMove) && session != nil {
		return that.sendMessage(client, msg.Action, ResponsePayload{
			Session: session,
			Status:  i18n.Status(that.language(client, payloadReq), session.State),
			Error:   err.Error(),
		})
	}

	if err != nil {
		return that.sendFailure(client, msg.Action, err)
	}

	return that.sendSession(client, msg.Action, payloadReq, session)
}

func (that *Server) handleGameReset(ctx context.Context, client *client, msg *Message) error {
	payloadReq, err := that.authorize(client, msg)
	if err != nil || payloadReq == nil {
		return err
	}

	session, err := that.games.ResetGame(ctx, payloadReq.Game.ID)
	if err != nil {
		return that.sendFailure(client, msg.Action, err)
	}

	return that.sendSession(client, msg.Action, payloadReq, session)
}

// authorize - a nil payload means the client was already answered with an error.
func (that *Server) authorize(client *client, msg *Message) (*RequestPayload, error) {
	payloadReq, err := that.decodePayload(client, msg)
	if err != nil || payloadReq == nil {
		return nil, err
	}

	if payloadReq.Game == nil || payloadReq.Game.ID == "" {
		return nil, that.sendError(client, msg.Action, errGameRequired.Error())
	}

	if err = that.tokens.VerifyToken(payloadReq.Token, payloadReq.Game.ID); err != nil {
		return nil, that.sendError(client, msg.Action, err.Error())
	}

	return payloadReq, nil
}

func (that *Server) decodePayload(client *client, msg *Message) (*RequestPayload, error) {
	var payloadReq RequestPayload

	if len(msg.Payload) == 0 {
		return &payloadReq, nil
	}

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		if sendErr := that.sendError(client, msg.Action, "malformed payload"); sendErr != nil {
			return nil, sendErr
		}

		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return &payloadReq, nil
}

func (that *Server) sendSession(client *client, action string, payloadReq *RequestPayload, session *entity.Session) error {
	return that.sendMessage(client, action, ResponsePayload{
		Session: session,
		Status:  i18n.Status(that.language(client, payloadReq), session.State),
	})
}

// sendFailure - errors the client can act on are passed through, the rest is logged.
func (that *Server) sendFailure(client *client, action string, err error) error {
	switch {
	case errors.Is(err, apperror.ErrInvalidMove),
		errors.Is(err, apperror.ErrGameNotFound),
		errors.Is(err, apperror.ErrInvalidToken):
		return that.sendError(client, action, err.Error())
	}

	that.logger.Error("request failed", "action", action, "error", err)

	return that.sendError(client, action, "internal error")
}

func (that *Server) language(client *client, payloadReq *RequestPayload) language.Tag {
	if payloadReq != nil && payloadReq.Lang != "" {
		return i18n.ParseTag(payloadReq.Lang)
	}

	return client.lang
}
