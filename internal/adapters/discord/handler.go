package discord

import (
	"go.uber.org/zap"

	"dmstrings/internal/ports/input"
	"dmstrings/internal/ports/output"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	useCase    input.StringUseCase
	translator output.T
	logger     *zap.Logger
}

// NewHandler creates a Handler.
func NewHandler(
	useCase input.StringUseCase,
	translator output.T,
	logger *zap.Logger,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		useCase:    useCase,
		translator: translator,
		logger:     logger,
	}
}
