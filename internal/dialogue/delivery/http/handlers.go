package http

import (
	"github.com/gin-gonic/gin"

	"voxnav/pkg/response"
)

// ProcessTurn godoc
// @Summary     Process a text turn
// @Description Runs one conversational turn and returns a question, response, action, or error payload.
// @Tags        Dialogue
// @Accept      json
// @Produce     json
// @Param       body body turnReq true "Turn input"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/dialogue [POST]
func (h *handler) ProcessTurn(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTurnReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out := h.uc.ProcessText(ctx, req.toInput())
	response.OK(c, out)
}

// ProcessAudio godoc
// @Summary     Process a voice turn
// @Description Transcribes the audio clip and runs the resulting text through the dialogue pipeline.
// @Tags        Dialogue
// @Accept      json
// @Produce     json
// @Param       body body audioReq true "Audio input, base64 encoded LINEAR16 PCM"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/dialogue/audio [POST]
func (h *handler) ProcessAudio(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAudioReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	in, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out := h.uc.ProcessAudio(ctx, in)
	response.OK(c, out)
}

// ClearSession godoc
// @Summary     Clear a user session
// @Description Drops all conversation state for the given user.
// @Tags        Dialogue
// @Produce     json
// @Param       user_id path string true "User ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/dialogue/sessions/{user_id} [DELETE]
func (h *handler) ClearSession(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		response.Error(c, errUserIDRequired, nil)
		return
	}

	h.uc.ClearSession(userID)
	response.OK(c, gin.H{"status": "cleared"})
}
