package ticket_test

import (
	"testing"

	"github.com/astra-hd/onboard/pkg/domain/model"
	"github.com/astra-hd/onboard/pkg/service/ticket"
	"github.com/m-mizutani/gt"
)

func build(t *testing.T, fields []model.RawField) *model.UserRecord {
	t.Helper()
	rec, err := ticket.NewRecordBuilder(model.DefaultTicketTemplate()).Build(fields)
	gt.NoError(t, err).Required()
	return rec
}

func TestBuilderBasicDispatch(t *testing.T) {
	rec := build(t, []model.RawField{
		{Name: "First Name", Value: "John"},
		{Name: "Last Name", Value: "Doe"},
		{Name: "Job Title", Value: "Engineer"},
		{Name: "Division", Value: "Manufacturing"},
		{Name: "Personal Phone", Value: "+1 555 0100"},
		{Name: "Additional Notes", Value: "starts Monday"},
	})

	gt.Equal(t, rec.FirstName, "John")
	gt.Equal(t, rec.LastName, "Doe")
	gt.Equal(t, rec.Title, "Engineer")
	gt.Equal(t, rec.Division, "Manufacturing")
	gt.Equal(t, rec.PersonalPhone, "+1 555 0100")
	gt.Equal(t, rec.AdditionalNotes, "starts Monday")
}

func TestBuilderCollapsesCompoundNames(t *testing.T) {
	rec := build(t, []model.RawField{
		{Name: "First Name", Value: "Erin"},
		{Name: "Last Name", Value: "O'hara"},
	})

	gt.Equal(t, rec.FirstName, "Erin")
	gt.Equal(t, rec.LastName, "Ohara")
}

func TestBuilderManagerEmailTrimmed(t *testing.T) {
	rec := build(t, []model.RawField{
		{Name: "First Name", Value: "John"},
		{Name: "Last Name", Value: "Doe"},
		{Name: "Manager", Value: "Jane Doe <jane@x.com>"},
	})

	gt.Equal(t, rec.ManagerName, "Jane Doe")
}

func TestBuilderWriteInOverride(t *testing.T) {
	t.Run("write-in replaces the controlled choice", func(t *testing.T) {
		rec := build(t, []model.RawField{
			{Name: "First Name", Value: "John"},
			{Name: "Last Name", Value: "Doe"},
			{Name: "Department", Value: "Other > Tooling"},
			{Name: "Office", Value: "> Building 7"},
		})

		gt.Equal(t, rec.Department, "Tooling")
		gt.Equal(t, rec.Office, "Building 7")
	})

	t.Run("populated field is never overwritten", func(t *testing.T) {
		rec := build(t, []model.RawField{
			{Name: "First Name", Value: "John"},
			{Name: "Last Name", Value: "Doe"},
			{Name: "Department", Value: "Finance"},
			{Name: "Department (other)", Value: "> Tooling"},
		})

		gt.Equal(t, rec.Department, "Finance")
	})
}

func TestBuilderGroups(t *testing.T) {
	t.Run("inline comma list", func(t *testing.T) {
		rec := build(t, []model.RawField{
			{Name: "First Name", Value: "John"},
			{Name: "Last Name", Value: "Doe"},
			{Name: "Groups", Value: "Engineering Team, CNC Group"},
		})

		gt.Equal(t, rec.RequestedGroups, []string{"Engineering Team", "CNC Group"})
	})

	t.Run("multi-line list merged by parser", func(t *testing.T) {
		rec := build(t, []model.RawField{
			{Name: "First Name", Value: "John"},
			{Name: "Last Name", Value: "Doe"},
			{Name: "Groups", Value: "Engineering Team" + ticket.ListSeparator + "CNC Group"},
		})

		gt.Equal(t, rec.RequestedGroups, []string{"Engineering Team", "CNC Group"})
	})

	t.Run("punctuation stripped, empties dropped", func(t *testing.T) {
		rec := build(t, []model.RawField{
			{Name: "First Name", Value: "John"},
			{Name: "Last Name", Value: "Doe"},
			{Name: "Distribution Lists", Value: "sales@corp.example, , Engineering Team."},
		})

		gt.Equal(t, rec.RequestedGroups, []string{"sales@corpexample", "Engineering Team"})
	})
}

func TestBuilderDefaultGroupsAppended(t *testing.T) {
	tmpl := model.DefaultTicketTemplate()
	tmpl.DefaultGroups = []string{"All Staff", "Engineering Team"}

	rec, err := ticket.NewRecordBuilder(tmpl).Build([]model.RawField{
		{Name: "First Name", Value: "John"},
		{Name: "Last Name", Value: "Doe"},
		{Name: "Groups", Value: "Engineering Team"},
	})
	gt.NoError(t, err).Required()

	// Appended after parsed groups, duplicates skipped
	gt.Equal(t, rec.RequestedGroups, []string{"Engineering Team", "All Staff"})
}

func TestBuilderUnrecognizedHeadersIgnored(t *testing.T) {
	rec := build(t, []model.RawField{
		{Name: "First Name", Value: "John"},
		{Name: "Last Name", Value: "Doe"},
		{Name: "Favorite Color", Value: "green"},
	})

	gt.Equal(t, rec.AdditionalNotes, "")
	gt.A(t, rec.RequestedGroups).Length(0)
}

func TestBuilderRequiresNames(t *testing.T) {
	_, err := ticket.NewRecordBuilder(model.DefaultTicketTemplate()).Build([]model.RawField{
		{Name: "First Name", Value: "John"},
	})
	gt.Error(t, err)

	_, err = ticket.NewRecordBuilder(model.DefaultTicketTemplate()).Build(nil)
	gt.Error(t, err)
}
