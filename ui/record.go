package ui

import (
	"fmt"

	"hospital-desk/core/models"
	"hospital-desk/dialogkit"
)

const (
	recordRootName = "Patient record"
	summaryCaption = "Summary"
	detailsCaption = "Information"
)

// recordMinSize is the smallest a patient record window may be.
var recordMinSize = dialogkit.NewSize(700, 500)

// PatientRecord is the TreeView dialog editing one patient: a summary card
// and a group of detail cards.
type PatientRecord struct {
	Root *dialogkit.Node

	Summary  *PatientSummaryView
	General  *GeneralDataView
	Personal *PersonalDataView
	Clinical *ClinicalDataView
	Bank     *BankDataView
}

// BuildPatientRecord opens the record of p in a new window of a.
func BuildPatientRecord(a *dialogkit.Arena, p *models.Patient) (*PatientRecord, error) {
	r := &PatientRecord{
		Summary:  NewPatientSummaryView(p),
		General:  NewGeneralDataView(p),
		Personal: NewPersonalDataView(p),
		Clinical: NewClinicalDataView(p),
		Bank:     NewBankDataView(p),
	}
	if err := openRecord(a, fmt.Sprintf("%s - %s", recordRootName, p.FullName()), r); err != nil {
		return nil, fmt.Errorf("BuildPatientRecord: %w", err)
	}
	return r, nil
}

// openRecord creates the record window and fills it with the views of r.
// The window is closed again if any view cannot be attached.
func openRecord(a *dialogkit.Arena, title string, r *PatientRecord) error {
	root, err := dialogkit.Instance().CreateDialog(a, dialogkit.TreeView, nil, "patientRecord", title)
	if err != nil {
		return err
	}
	if err := assembleRecord(a, root, r); err != nil {
		if sh := root.Shell(); sh != nil {
			sh.Close()
		}
		return err
	}
	r.Root = root
	return nil
}

func assembleRecord(a *dialogkit.Arena, root *dialogkit.Node, r *PatientRecord) error {
	if err := dialogkit.InitializeDialog(root); err != nil {
		return err
	}
	root.TreeViewState().SetRootName(recordRootName)

	summary, err := newLeaf(a, r.Summary, summaryCaption)
	if err != nil {
		return err
	}
	if err := root.AddChild(summary, summaryCaption); err != nil {
		return err
	}

	pages := []struct {
		b       dialogkit.Behavior
		caption string
	}{
		{r.General, "General"},
		{r.Personal, "Personal"},
		{r.Clinical, "Clinical"},
		{r.Bank, "Bank"},
	}
	details := make([]*dialogkit.Node, 0, len(pages))
	for _, page := range pages {
		n, err := newLeaf(a, page.b, page.caption)
		if err != nil {
			return err
		}
		details = append(details, n)
	}
	if err := root.AddChildren(details, detailsCaption); err != nil {
		return err
	}

	size := root.Size().Max(recordMinSize)
	root.SetSize(size)
	if sh := root.Shell(); sh != nil {
		sh.SetMinSize(size)
		sh.Pack()
	}
	return nil
}

// newLeaf wraps b in an initialized Simple dialog.
func newLeaf(a *dialogkit.Arena, b dialogkit.Behavior, caption string) (*dialogkit.Node, error) {
	n, err := a.NewSimple(b)
	if err != nil {
		return nil, fmt.Errorf("newLeaf: %w", err)
	}
	n.SetCaption(caption)
	if err := dialogkit.InitializeDialog(n); err != nil {
		return nil, fmt.Errorf("newLeaf: %w", err)
	}
	return n, nil
}
