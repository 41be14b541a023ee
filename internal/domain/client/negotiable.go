package client

// negotiated pairs a canonical payable field with its admin-proposed
// shadow. The two-slot shape makes the snapshot invariant structural:
// approve and accept iterate the pairs instead of each call site
// remembering the field list.
type negotiated struct {
	canonical *float64
	edited    *float64
}

func (f negotiated) snapshot() { *f.edited = *f.canonical }
func (f negotiated) accept()   { *f.canonical = *f.edited }

// allNegotiated covers every payable field; Phase-1 approvals snapshot and
// accept across the whole configuration.
func (c *EnrolledClient) allNegotiated() []negotiated {
	return []negotiated{
		{&c.PayableEnrollmentCharge, &c.EditedEnrollmentCharge},
		{&c.PayableOfferLetterCharge, &c.EditedOfferLetterCharge},
		{&c.PayableFirstYearPercentage, &c.EditedFirstYearPercentage},
		{&c.PayableFirstYearFixedCharge, &c.EditedFirstYearFixedCharge},
		{&c.NetPayableFirstYearPrice, &c.EditedNetFirstYearPrice},
		{&c.FirstYearSalary, &c.EditedFirstYearSalary},
	}
}

// finalNegotiated is the Phase-2 binding: offer-letter and first-year
// fields only, the enrollment charge is settled in Phase 1.
func (c *EnrolledClient) finalNegotiated() []negotiated {
	return []negotiated{
		{&c.PayableOfferLetterCharge, &c.EditedOfferLetterCharge},
		{&c.PayableFirstYearPercentage, &c.EditedFirstYearPercentage},
		{&c.PayableFirstYearFixedCharge, &c.EditedFirstYearFixedCharge},
		{&c.NetPayableFirstYearPrice, &c.EditedNetFirstYearPrice},
		{&c.FirstYearSalary, &c.EditedFirstYearSalary},
	}
}

// SnapshotEdits aligns every edited shadow with its canonical value.
// Called on admin approval so an approved record never carries a stale
// proposal.
func (c *EnrolledClient) SnapshotEdits() {
	for _, f := range c.allNegotiated() {
		f.snapshot()
	}
}

// AcceptEdits promotes every edited shadow into its canonical field.
// Called when sales accepts the admin's counter-proposal.
func (c *EnrolledClient) AcceptEdits() {
	for _, f := range c.allNegotiated() {
		f.accept()
	}
}

// SnapshotFinalEdits / AcceptFinalEdits are the Phase-2 equivalents over
// the narrower field binding.
func (c *EnrolledClient) SnapshotFinalEdits() {
	for _, f := range c.finalNegotiated() {
		f.snapshot()
	}
}

func (c *EnrolledClient) AcceptFinalEdits() {
	for _, f := range c.finalNegotiated() {
		f.accept()
	}
}

// ProposedEdits carries a partial admin counter-proposal. Nil fields keep
// their previous edited value (not the canonical one) so an admin can
// refine a proposal across several rejections.
type ProposedEdits struct {
	EnrollmentCharge     *float64
	OfferLetterCharge    *float64
	FirstYearPercentage  *float64
	FirstYearFixedCharge *float64
	NetFirstYearPrice    *float64
	FirstYearSalary      *float64
}

// ApplyProposed writes only the provided edited fields.
func (c *EnrolledClient) ApplyProposed(e ProposedEdits) {
	if e.EnrollmentCharge != nil {
		c.EditedEnrollmentCharge = *e.EnrollmentCharge
	}
	if e.OfferLetterCharge != nil {
		c.EditedOfferLetterCharge = *e.OfferLetterCharge
	}
	if e.FirstYearPercentage != nil {
		c.EditedFirstYearPercentage = *e.FirstYearPercentage
	}
	if e.FirstYearFixedCharge != nil {
		c.EditedFirstYearFixedCharge = *e.FirstYearFixedCharge
	}
	if e.NetFirstYearPrice != nil {
		c.EditedNetFirstYearPrice = *e.NetFirstYearPrice
	}
	if e.FirstYearSalary != nil {
		c.EditedFirstYearSalary = *e.FirstYearSalary
	}
}
