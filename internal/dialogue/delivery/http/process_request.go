package http

import (
	"encoding/base64"
	"errors"

	"github.com/gin-gonic/gin"

	"voxnav/internal/dialogue"
)

type turnReq struct {
	UserID   string `json:"user_id"`
	Text     string `json:"text"`
	URL      string `json:"url"`
	PageHTML string `json:"page_html"`
}

func (r turnReq) validate() error {
	if r.UserID == "" {
		return errors.New("user_id is required")
	}
	if r.Text == "" {
		return errors.New("text is required")
	}
	return nil
}

func (r turnReq) toInput() dialogue.TurnInput {
	return dialogue.TurnInput{
		UserID:   r.UserID,
		Text:     r.Text,
		URL:      r.URL,
		PageHTML: r.PageHTML,
	}
}

type audioReq struct {
	UserID   string `json:"user_id"`
	Audio    string `json:"audio"`
	Language string `json:"language"`
	URL      string `json:"url"`
	PageHTML string `json:"page_html"`
}

func (r audioReq) validate() error {
	if r.UserID == "" {
		return errors.New("user_id is required")
	}
	if r.Audio == "" {
		return errors.New("audio is required")
	}
	return nil
}

func (r audioReq) toInput() (dialogue.AudioInput, error) {
	audio, err := base64.StdEncoding.DecodeString(r.Audio)
	if err != nil {
		return dialogue.AudioInput{}, errors.New("audio must be base64 encoded")
	}
	return dialogue.AudioInput{
		UserID:   r.UserID,
		Audio:    audio,
		Language: r.Language,
		URL:      r.URL,
		PageHTML: r.PageHTML,
	}, nil
}

// processTurnReq binds and validates the text turn request body.
func (h *handler) processTurnReq(c *gin.Context) (turnReq, error) {
	var req turnReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processAudioReq binds and validates the audio turn request body.
func (h *handler) processAudioReq(c *gin.Context) (audioReq, error) {
	var req audioReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
