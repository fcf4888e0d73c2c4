package addresses

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// deleteConcurrency caps the number of in-flight delete calls.
const deleteConcurrency = 5

// BatchDeleteResult contains the results of a batch delete operation.
type BatchDeleteResult struct {
	Requested  int
	Successful []int64
	Failed     []DeleteError
}

// DeleteError contains information about a failed delete operation.
type DeleteError struct {
	AddressID int64
	Err       error
}

// Error implements the error interface.
func (e DeleteError) Error() string {
	return fmt.Sprintf("failed to delete address %d: %v", e.AddressID, e.Err)
}

// Unwrap returns the underlying error.
func (e DeleteError) Unwrap() error {
	return e.Err
}

// BatchDelete deletes multiple addresses concurrently and aggregates
// per-address outcomes. Individual failures do not stop the remaining
// deletes; there are no transaction semantics.
func (s *Service) BatchDelete(ctx context.Context, ids []int64) BatchDeleteResult {
	result := BatchDeleteResult{
		Requested: len(ids),
	}

	if len(ids) == 0 {
		return result
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(deleteConcurrency)

	successChan := make(chan int64, len(ids))
	errorChan := make(chan DeleteError, len(ids))

	for _, id := range ids {
		id := id
		g.Go(func() error {
			if err := s.Delete(ctx, id); err != nil {
				s.logger.Warn().
					Err(err).
					Int64("id", id).
					Msg("Failed to delete address")
				errorChan <- DeleteError{
					AddressID: id,
					Err:       err,
				}
			} else {
				successChan <- id
			}
			return nil // Don't stop on individual errors
		})
	}

	g.Wait()
	close(successChan)
	close(errorChan)

	for id := range successChan {
		result.Successful = append(result.Successful, id)
	}
	for err := range errorChan {
		result.Failed = append(result.Failed, err)
	}

	return result
}
