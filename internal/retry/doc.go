// Package retry provides retry logic with exponential backoff for transient
// filesystem failures, such as running out of file descriptors while many
// files are opened concurrently.
//
// # Example Usage
//
//	executor := retry.NewExecutor(retry.NewFileErrorClassifier(), retry.NewExponentialBackoff(3))
//
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    rc, err = file.Open()
//	    return err
//	})
//
// # Error Classification
//
// The ErrorClassifier interface determines which errors are transient (retryable)
// versus fatal (non-retryable). FileErrorClassifier treats descriptor exhaustion,
// interrupted calls and busy resources as transient. A missing file or a
// permission error is fatal.
//
// # Thread Safety
//
// Executor instances are safe for concurrent use. Use WithOnRetry() to create
// independent configurations per goroutine.
package retry
