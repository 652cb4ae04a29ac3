package controllers

import (
	"github.com/rios0rios0/releasefixtures/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewPrepareController); err != nil {
		return err
	}
	if err := container.Provide(NewCleanController); err != nil {
		return err
	}
	if err := container.Provide(NewCommitController); err != nil {
		return err
	}
	if err := container.Provide(NewVerifyController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}
	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	prepareController *PrepareController,
	cleanController *CleanController,
	commitController *CommitController,
	verifyController *VerifyController,
) *[]entities.Controller {
	return &[]entities.Controller{
		prepareController,
		cleanController,
		commitController,
		verifyController,
	}
}
