package services

import (
	"context"

	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
	"github.com/SscSPs/journal_lifecycle_app/internal/dto"
)

// BoardReaderSvc defines read operations on boards
type BoardReaderSvc interface {
	// GetBoard returns the board of a scope, loading it on first use.
	GetBoard(ctx context.Context, scope domain.Scope) (*domain.Board, error)

	// ReloadBoard replaces the named lists (all lists when none are given) with the backend's.
	ReloadBoard(ctx context.Context, scope domain.Scope, lists ...domain.BoardList) (*domain.Board, error)

	// PendingActions lists the "<action>:<id>" pairs in flight for the scope.
	PendingActions(scope domain.Scope) []string

	// IsBusy reports whether any action is in flight for the entity.
	IsBusy(entityID string) bool
}

// SuggestionTransitionSvc defines the lifecycle transitions.
// A transition that fails remotely still returns the reconciled board alongside the error.
type SuggestionTransitionSvc interface {
	Delete(ctx context.Context, scope domain.Scope, suggestionID string) (*domain.Board, error)
	BulkGenerate(ctx context.Context, scope domain.Scope, req dto.BulkGenerateRequest) (*domain.Board, error)
	BeginEdit(ctx context.Context, scope domain.Scope, suggestionID string) (*dto.EditFormResponse, error)
	SaveEdit(ctx context.Context, scope domain.Scope, suggestionID string, req dto.SaveSuggestionRequest) (*domain.Board, error)
	Approve(ctx context.Context, scope domain.Scope, suggestionID string) (*domain.Board, error)
	MarkPosted(ctx context.Context, scope domain.Scope) (*domain.Board, error)
	MoveToDraft(ctx context.Context, scope domain.Scope, entryID string) (*domain.Board, error)
}

// LifecycleSvcFacade combines all lifecycle-related service interfaces
type LifecycleSvcFacade interface {
	BoardReaderSvc
	SuggestionTransitionSvc
}
