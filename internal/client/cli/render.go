package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/partsadmin/internal/client/customers"
	"github.com/dmitrijs2005/partsadmin/internal/client/models"
	"github.com/fatih/color"
)

var (
	errColor  = color.New(color.FgRed)
	okColor   = color.New(color.FgGreen)
	infoColor = color.New(color.FgYellow)
	headColor = color.New(color.Bold)
)

func (a *App) fail(format string, args ...any) {
	errColor.Fprintf(a.out, format+"\n", args...)
}

func (a *App) success(format string, args ...any) {
	okColor.Fprintf(a.out, format+"\n", args...)
}

func (a *App) info(format string, args ...any) {
	infoColor.Fprintf(a.out, format+"\n", args...)
}

func (a *App) renderLogin() {
	a.info("Please log in to continue. Type 'login', or 'register' to create an account.")
}

func (a *App) renderView(v customers.View) {
	if v.Err != nil {
		a.fail("Error: %s", v.Err)
		a.info("Type 'retry' to try again.")
	}

	headColor.Fprintln(a.out, "Customer Management")
	if c := describeCriteria(v.Criteria); c != "" {
		fmt.Fprintf(a.out, "Filters: %s\n", c)
	}

	if len(v.Customers) == 0 {
		fmt.Fprintln(a.out, "No customers found.")
		return
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tADDRESS\tCITY\tSTATE\tPINCODE")
	for _, c := range v.Customers {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", c.CustomerID, c.Name, c.Address, c.City, c.State, c.Pincode)
	}
	_ = tw.Flush()
	fmt.Fprintf(a.out, "Showing %d of %d customers\n", len(v.Customers), v.Loaded)
}

func (a *App) renderDetail(c *models.Customer) {
	headColor.Fprintf(a.out, "Customer %s\n", c.CustomerID)
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name:\t%s\n", c.Name)
	fmt.Fprintf(tw, "Address:\t%s\n", c.Address)
	fmt.Fprintf(tw, "City:\t%s\n", c.City)
	fmt.Fprintf(tw, "State:\t%s\n", c.State)
	fmt.Fprintf(tw, "Pincode:\t%s\n", c.Pincode)
	_ = tw.Flush()
}

func (a *App) renderOptions(o customers.Options) {
	fmt.Fprintf(a.out, "States:   %s\n", joinOrDash(o.States))
	fmt.Fprintf(a.out, "Cities:   %s\n", joinOrDash(o.Cities))
	fmt.Fprintf(a.out, "Pincodes: %s\n", joinOrDash(o.Pincodes))
}

func describeCriteria(c customers.Criteria) string {
	var parts []string
	if c.SearchTerm != "" {
		parts = append(parts, fmt.Sprintf("search=%q", c.SearchTerm))
	}
	if c.State != "" {
		parts = append(parts, "state="+c.State)
	}
	if c.City != "" {
		parts = append(parts, "city="+c.City)
	}
	if c.Pincode != "" {
		parts = append(parts, "pincode="+c.Pincode)
	}
	return strings.Join(parts, ", ")
}

func joinOrDash(v []string) string {
	if len(v) == 0 {
		return "-"
	}
	return strings.Join(v, ", ")
}
