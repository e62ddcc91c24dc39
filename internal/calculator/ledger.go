package calculator

import "github.com/mmynk/rentsplit/internal/models"

// Ledger returns the absolute money split of a new rental, one action per
// actor in models.Actors order. The deductible reduction fee is paid by the
// driver and passed entirely to the platform. A platform share eaten up by
// the assistance fee is reported as a platform debit.
func Ledger(s models.Settlement) []models.Action {
	return []models.Action{
		{Who: models.ActorDriver, Type: models.Debit, Amount: s.DriverTotal()},
		{Who: models.ActorOwner, Type: models.Credit, Amount: s.OwnerShare()},
		{Who: models.ActorInsurance, Type: models.Credit, Amount: s.InsuranceFee},
		{Who: models.ActorAssistance, Type: models.Credit, Amount: s.AssistanceFee},
		signedAction(models.ActorPlatform, s.PlatformTotal()),
	}
}

// Diff returns what each actor must now receive or pay after a rental has
// been amended from original to modified.
//
// A positive delta means the amendment leaves the actor better off (credit),
// anything else is a debit. The driver's delta is inverted because the driver
// pays rather than receives. Zero movements are still emitted.
func Diff(original, modified models.Settlement) []models.Action {
	deltas := []struct {
		who   models.Actor
		delta int64
	}{
		{models.ActorDriver, original.DriverTotal() - modified.DriverTotal()},
		{models.ActorOwner, modified.OwnerShare() - original.OwnerShare()},
		{models.ActorInsurance, modified.InsuranceFee - original.InsuranceFee},
		{models.ActorAssistance, modified.AssistanceFee - original.AssistanceFee},
		{models.ActorPlatform, modified.PlatformTotal() - original.PlatformTotal()},
	}

	actions := make([]models.Action, len(deltas))
	for i, d := range deltas {
		actions[i] = signedAction(d.who, d.delta)
	}
	return actions
}

// Net sums the signed amounts of actions. Every ledger produced by Ledger or
// Diff nets to zero.
func Net(actions []models.Action) int64 {
	var total int64
	for _, a := range actions {
		total += a.Signed()
	}
	return total
}

func signedAction(who models.Actor, delta int64) models.Action {
	if delta > 0 {
		return models.Action{Who: who, Type: models.Credit, Amount: delta}
	}
	return models.Action{Who: who, Type: models.Debit, Amount: -delta}
}
