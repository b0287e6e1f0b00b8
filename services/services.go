// Package services holds the business rules between the HTTP controllers
// and the repositories. Each service depends on narrow store interfaces so
// it can be exercised without a database.
package services

//go:generate mockgen -destination=../mocks/mock_services.go -package=mocks wholesale-delivery/services VerificationMailer,Revoker

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"wholesale-delivery/errs"
)

// TokenIssuer signs bearer tokens for logged-in accounts.
type TokenIssuer interface {
	Issue(subject, role string) (string, error)
}

// compensationTimeout bounds the cleanup work done after a failed request,
// which must run even when the request context is already gone.
const compensationTimeout = 10 * time.Second

func detached(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
}

func parseID(id, what string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errs.Newf(errs.InvalidInput, "Invalid %s id: %q", what, id)
	}
	return oid, nil
}

// notBlank rejects an update that provides a required field as an empty
// string. A nil field is left unchanged and passes.
func notBlank(fields map[string]*string) error {
	for _, label := range sortedKeys(fields) {
		if v := fields[label]; v != nil && strings.TrimSpace(*v) == "" {
			return errs.Newf(errs.InvalidInput, "%s cannot be empty", label)
		}
	}
	return nil
}

func sortedKeys(m map[string]*string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func internal(msg string, err error) error {
	return errs.Wrap(errs.Internal, msg, err)
}
