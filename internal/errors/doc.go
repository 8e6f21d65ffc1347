// Package errors provides coded errors for the game core, its services and
// the save repositories.
//
// Every error carries a Code, a message, an optional cause and optional
// metadata. Wrapping keeps the code of the innermost coded error, so a
// NotFound raised by a repository is still a NotFound after the encounter
// orchestrator and the CLI have added context.
//
// # Basic Usage
//
//	err := errors.NotFoundf("player %s not found", id)
//	err := errors.OutOfRangef("%s is already at %d", attr, 100)
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save player after defeat")
//	}
//
// # Checking
//
//	if errors.IsNotFound(err) {
//	    // offer to create a new character
//	}
//	os.Exit(errors.GetCode(err).ExitCode())
//
// # Config validation
//
// Constructors validate their Config with the builder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Random == nil {
//	    vb.RequiredField("Random")
//	}
//	return vb.Build()
package errors
