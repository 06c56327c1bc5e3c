package authz

import (
	"context"

	"vitacare-service/internal/app/contracts"
	"vitacare-service/internal/pkg/exceptions"
	"vitacare-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MatchMode int

const (
	// RequireAll fails the chain on the first failing predicate.
	RequireAll MatchMode = iota
	// RequireAny tolerates individual failures; the terminal Check fails
	// unless at least one predicate succeeded.
	RequireAny
)

// Evaluator holds the read-only collaborators consulted by predicates. It is
// safe for concurrent use; each request builds its own Chain value.
type Evaluator struct {
	accounts contracts.AccountRepository
	visits   contracts.VisitRepository
	log      *zap.Logger
}

func NewEvaluator(accounts contracts.AccountRepository, visits contracts.VisitRepository, logger *zap.Logger) *Evaluator {
	return &Evaluator{
		accounts: accounts,
		visits:   visits,
		log:      logger,
	}
}

// Chain is an immutable, request-scoped authorization context. Every step
// returns a new value; nothing is shared between requests, so a chain can
// never leak state across calls.
type Chain struct {
	evaluator        *Evaluator
	callerID         primitive.ObjectID
	institutionScope primitive.ObjectID
	hasScope         bool
	mode             MatchMode
	satisfied        int
	err              error
}

// Start begins a chain for the caller, optionally scoped to an institution.
// Both identifiers are checked syntactically before any predicate runs.
func (e *Evaluator) Start(callerID, institutionScope string) Chain {
	chain := Chain{evaluator: e, mode: RequireAll}

	if !utils.IsValidEntityReference(callerID) {
		chain.err = exceptions.ErrInvalidEntityReference(nil)
		return chain
	}
	chain.callerID, _ = primitive.ObjectIDFromHex(callerID)

	if institutionScope != "" {
		if !utils.IsValidEntityReference(institutionScope) {
			chain.err = exceptions.ErrInvalidEntityReference(nil)
			return chain
		}
		chain.institutionScope, _ = primitive.ObjectIDFromHex(institutionScope)
		chain.hasScope = true
	}

	return chain
}

// MatchAnyOf switches the chain to RequireAny semantics for the following
// predicates.
func (c Chain) MatchAnyOf() Chain {
	if c.err != nil {
		return c
	}
	c.mode = RequireAny
	return c
}

func (c Chain) CallerID() primitive.ObjectID {
	return c.callerID
}

// apply folds a predicate outcome into the chain.
func (c Chain) apply(ok bool, err error) Chain {
	if c.err != nil {
		return c
	}
	if err != nil {
		c.err = err
		return c
	}
	if ok {
		c.satisfied++
		return c
	}
	if c.mode == RequireAll {
		c.err = exceptions.ErrNotAuthorized(nil)
	}
	return c
}

// Self checks the caller is the referenced account. Purely syntactic; no
// storage read.
func (c Chain) Self(accountID primitive.ObjectID) Chain {
	if c.err != nil {
		return c
	}
	return c.apply(c.callerID == accountID, nil)
}

// InstitutionAdmin checks the caller administers the chain's institution scope.
func (c Chain) InstitutionAdmin(ctx context.Context) Chain {
	if c.err != nil {
		return c
	}
	if !c.hasScope {
		return c.apply(false, nil)
	}
	ok, err := c.evaluator.accounts.IsInstitutionAdmin(ctx, c.callerID, c.institutionScope)
	return c.apply(ok, err)
}

// InstitutionStaff checks the caller is staff of the given institution.
func (c Chain) InstitutionStaff(ctx context.Context, institutionID primitive.ObjectID) Chain {
	if c.err != nil {
		return c
	}
	ok, err := c.evaluator.accounts.IsInstitutionStaff(ctx, c.callerID, institutionID)
	return c.apply(ok, err)
}

// ProviderOfVisit checks the caller is the provider snapshotted on the visit.
func (c Chain) ProviderOfVisit(ctx context.Context, visitID primitive.ObjectID) Chain {
	if c.err != nil {
		return c
	}
	visit, err := c.evaluator.visits.FindByID(ctx, visitID)
	if err != nil {
		return c.apply(false, err)
	}
	if visit == nil {
		return c.apply(false, nil)
	}
	return c.apply(visit.Provider.ID == c.callerID, nil)
}

// PatientOfVisit checks the caller is the patient snapshotted on the visit.
func (c Chain) PatientOfVisit(ctx context.Context, visitID primitive.ObjectID) Chain {
	if c.err != nil {
		return c
	}
	visit, err := c.evaluator.visits.FindByID(ctx, visitID)
	if err != nil {
		return c.apply(false, err)
	}
	if visit == nil {
		return c.apply(false, nil)
	}
	return c.apply(visit.Patient.ID == c.callerID, nil)
}

// HasServedPatient checks the caller, as provider, has a completed visit with
// the patient.
func (c Chain) HasServedPatient(ctx context.Context, patientID primitive.ObjectID) Chain {
	if c.err != nil {
		return c
	}
	ok, err := c.evaluator.visits.HasServedPatient(ctx, c.callerID, patientID)
	return c.apply(ok, err)
}

// ServedBy checks the caller, as patient, has a completed visit with the
// provider.
func (c Chain) ServedBy(ctx context.Context, providerID primitive.ObjectID) Chain {
	if c.err != nil {
		return c
	}
	ok, err := c.evaluator.visits.HasServedPatient(ctx, providerID, c.callerID)
	return c.apply(ok, err)
}

// Check is the terminal step of the chain.
func (c Chain) Check() error {
	if c.err != nil {
		return c.err
	}
	if c.mode == RequireAny && c.satisfied == 0 {
		return exceptions.ErrNoPredicatePassed(nil)
	}
	return nil
}
