package controllers

import (
	"vitacare-service/internal/app/models"
	"vitacare-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func toSlotResponse(slot *models.Slot) responses.Slot {
	response := responses.Slot{
		ID:              slot.ID.Hex(),
		ProviderID:      slot.ProviderID.Hex(),
		InstitutionID:   slot.InstitutionID.Hex(),
		InstitutionName: slot.InstitutionName,
		Start:           slot.Start,
		End:             slot.End,
		Booked:          slot.Booked,
	}
	if slot.VisitID != primitive.NilObjectID {
		response.VisitID = slot.VisitID.Hex()
	}
	return response
}

func toSlotResponses(slots []models.Slot) []responses.Slot {
	out := make([]responses.Slot, len(slots))
	for i := range slots {
		out[i] = toSlotResponse(&slots[i])
	}
	return out
}

func toVisitResponse(visit *models.Visit) responses.Visit {
	codes := make([]responses.VisitCode, len(visit.Codes))
	for i, code := range visit.Codes {
		codes[i] = responses.VisitCode{
			Type:   string(code.Type),
			Value:  code.Value,
			Active: code.Active,
		}
	}
	return responses.Visit{
		ID:          visit.ID.Hex(),
		Patient:     responses.VisitParty{ID: visit.Patient.ID.Hex(), Name: visit.Patient.Name},
		Provider:    responses.VisitParty{ID: visit.Provider.ID.Hex(), Name: visit.Provider.Name},
		Institution: responses.VisitParty{ID: visit.Institution.ID.Hex(), Name: visit.Institution.Name},
		SlotID:      visit.SlotID.Hex(),
		Start:       visit.Start,
		End:         visit.End,
		Status:      string(visit.Status),
		Remarks:     visit.Remarks,
		Note:        visit.Note,
		Codes:       codes,
	}
}

func toReviewResponse(review *models.Review) responses.Review {
	return responses.Review{
		ID:          review.ID.Hex(),
		SubjectID:   review.SubjectID.Hex(),
		SubjectType: string(review.SubjectType),
		Value:       review.Value,
	}
}
