// Package pipeline runs a resume from input to rendered output.
//
// Each run walks a small state machine:
//
//	awaiting_input -> mapped -> validated -> rendered
//
// with failed reachable from every non-terminal state. Any failure stops the
// run and comes back as a *Error that names the stage (input, validation or
// output), the field when a business rule was broken, and the cause. The
// error unwraps to ErrInputAcquisition, ErrValidation or ErrOutput and to
// the cause itself:
//
//	res, err := pipeline.New(src, r, pipeline.WithLogger(log)).Run(ctx, &buf)
//	if errors.Is(err, pipeline.ErrValidation) {
//	    pe, _ := pipeline.AsError(err)
//	    fmt.Println(pe.Field, pe.Cause)
//	}
//
// Every run carries a run ID in its context (see WithRunID); RunIDExtractor
// lets the logger attach it to each record.
package pipeline
