// Package cli drives a roster session from line-oriented text commands.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/KirkDiggler/army-builder/internal/domain/catalog"
	armyerr "github.com/KirkDiggler/army-builder/internal/errors"
	"github.com/KirkDiggler/army-builder/internal/services/export"
	"github.com/KirkDiggler/army-builder/internal/services/roster"
)

const (
	defaultTemplateName = "army_full_roster_template.xlsx"
	prompt              = "> "
)

const helpText = `Commands:
  units                     list units that can still be added
  options <unit>            eligible equipment of a unit
  add <unit> [qty]          add qty slots of a unit (default 1)
  rm <n>                    remove slot n
  equip <n> [item ...]      replace the equipment of slot n
  show                      roster with totals
  export [file]             write the roster workbook
  template [file]           write the empty workbook template
  new [name]                start another roster
  rosters                   list your rosters
  use <id>                  switch roster
  drop <id>                 delete a roster
  help                      this text
  quit                      leave`

// Handler runs commands against one owner's current roster
type Handler struct {
	service  roster.Service
	exporter *export.Exporter
	catalog  *catalog.Catalog
	ownerID  string
	rosterID string
}

// HandlerConfig holds configuration for the CLI handler
type HandlerConfig struct {
	Service  roster.Service   // Required
	Catalog  *catalog.Catalog // Required
	Exporter *export.Exporter // Optional, export commands fail without it
	OwnerID  string           // Required
	RosterID string           // Required: roster the session starts on
}

// NewHandler creates a CLI handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.Service == nil {
		panic("roster service is required")
	}
	if cfg.Catalog == nil {
		panic("catalog is required")
	}

	return &Handler{
		service:  cfg.Service,
		exporter: cfg.Exporter,
		catalog:  cfg.Catalog,
		ownerID:  cfg.OwnerID,
		rosterID: cfg.RosterID,
	}
}

// RosterID returns the roster commands currently apply to
func (h *Handler) RosterID() string {
	return h.rosterID
}

// Run reads commands from in until quit or EOF
func (h *Handler) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprint(out, prompt)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if quit := h.Execute(ctx, scanner.Text(), out); quit {
			return nil
		}
		fmt.Fprint(out, prompt)
	}

	return scanner.Err()
}

// Execute runs one command line. Failures are reported to out; the return
// value is true when the session should end.
func (h *Handler) Execute(ctx context.Context, line string, out io.Writer) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]

	var err error
	switch cmd {
	case "quit", "exit":
		return true
	case "help", "?":
		fmt.Fprintln(out, helpText)
	case "units":
		err = h.units(ctx, out)
	case "options":
		err = h.options(ctx, args, out)
	case "add":
		err = h.add(ctx, args, out)
	case "rm", "remove":
		err = h.remove(ctx, args, out)
	case "equip":
		err = h.equip(ctx, args, out)
	case "show":
		err = h.show(ctx, out)
	case "export":
		err = h.export(ctx, args, out)
	case "template":
		err = h.template(args, out)
	case "new":
		err = h.newRoster(ctx, args, out)
	case "rosters":
		err = h.rosters(ctx, out)
	case "use":
		err = h.use(ctx, args, out)
	case "drop":
		err = h.drop(ctx, args, out)
	default:
		err = armyerr.InvalidArgumentf("unknown command %q, try help", cmd)
	}

	if err != nil {
		fmt.Fprintf(out, "error: %s\n", describe(err))
	}
	return false
}

// describe turns service errors into something a player can act on
func describe(err error) string {
	meta := armyerr.GetMeta(err)
	switch {
	case armyerr.IsCapacityExceeded(err):
		return fmt.Sprintf("only %v more %v allowed", meta["remaining"], meta["unit_key"])
	case armyerr.IsOutOfRange(err):
		return fmt.Sprintf("no slot %v, roster has %v", toDisplay(meta["index"]), meta["size"])
	}
	return err.Error()
}

func toDisplay(index any) any {
	if i, ok := index.(int); ok {
		return i + 1
	}
	return index
}

// slotIndex parses a 1-based slot number into a 0-based index
func slotIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, armyerr.InvalidArgumentf("slot must be a number, got %q", arg)
	}
	return n - 1, nil
}

func (h *Handler) units(ctx context.Context, out io.Writer) error {
	options, err := h.service.UnitOptions(ctx, h.rosterID)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	header := ""
	for _, opt := range options {
		if opt.Hidden {
			continue
		}

		group := "Core"
		if opt.Unit.Mercenary {
			group = "Mercenaries"
		}
		if group != header {
			fmt.Fprintf(tw, "%s\n", group)
			header = group
		}

		fmt.Fprintf(tw, "  %s\t%s\t%s\t%d left\n", opt.Unit.Key, opt.Unit.Name, opt.Unit.Cost, opt.Remaining)
	}
	return tw.Flush()
}

func (h *Handler) options(ctx context.Context, args []string, out io.Writer) error {
	if len(args) != 1 {
		return armyerr.InvalidArgument("usage: options <unit>")
	}

	options, err := h.service.UnitOptions(ctx, h.rosterID)
	if err != nil {
		return err
	}

	for _, opt := range options {
		if opt.Unit.Key != args[0] {
			continue
		}

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, group := range opt.Equipment {
			if len(group.Items) == 0 {
				continue
			}
			fmt.Fprintf(tw, "%s\n", group.Label)
			for _, item := range group.Items {
				fmt.Fprintf(tw, "  %s\t%s\t%s\n", item.Key, item.Name, item.Cost)
			}
		}
		return tw.Flush()
	}

	return armyerr.NotFoundf("unit %s not found", args[0])
}

func (h *Handler) add(ctx context.Context, args []string, out io.Writer) error {
	if len(args) < 1 || len(args) > 2 {
		return armyerr.InvalidArgument("usage: add <unit> [qty]")
	}

	quantity := 1
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return armyerr.InvalidArgumentf("quantity must be a number, got %q", args[1])
		}
		quantity = n
	}

	added, err := h.service.AddUnits(ctx, h.rosterID, args[0], quantity)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Added %d x %s\n", len(added), added[0].Name)
	return nil
}

func (h *Handler) remove(ctx context.Context, args []string, out io.Writer) error {
	if len(args) != 1 {
		return armyerr.InvalidArgument("usage: rm <n>")
	}

	index, err := slotIndex(args[0])
	if err != nil {
		return err
	}

	removed, err := h.service.RemoveSlot(ctx, h.rosterID, index)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Removed #%d %s\n", index+1, removed.Name)
	return nil
}

func (h *Handler) equip(ctx context.Context, args []string, out io.Writer) error {
	if len(args) < 1 {
		return armyerr.InvalidArgument("usage: equip <n> [item ...]")
	}

	index, err := slotIndex(args[0])
	if err != nil {
		return err
	}

	result, err := h.service.SetSlotEquipment(ctx, h.rosterID, index, args[1:])
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "#%d %s: %s (%d ducats, %d glory)\n",
		index+1, result.Slot.Name, h.itemNames(result.Slot.Equipment),
		result.Totals.Ducats, result.Totals.Glory)
	if len(result.Dropped) > 0 {
		fmt.Fprintf(out, "Not allowed for %s: %s\n", result.Slot.Name, strings.Join(result.Dropped, ", "))
	}
	return nil
}

func (h *Handler) show(ctx context.Context, out io.Writer) error {
	summary, err := h.service.Summary(ctx, h.rosterID)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s (%s)\n", summary.Name, summary.RosterID)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, slot := range summary.Slots {
		fmt.Fprintf(tw, "  #%d\t%s\t%s\t%d ducats\t%d glory\n",
			slot.Index+1, slot.Name, h.itemNames(slot.Equipment), slot.Ducats, slot.Glory)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	army := summary.Army
	fmt.Fprintf(out, "Total: %d ducats, %d/%d glory\n", army.Ducats, army.Glory, army.GloryLimit)
	if army.OverCap {
		fmt.Fprintf(out, "Glory limit exceeded by %d\n", army.Glory-army.GloryLimit)
	}
	return nil
}

func (h *Handler) itemNames(keys []string) string {
	if len(keys) == 0 {
		return "-"
	}

	names := make([]string, 0, len(keys))
	for _, key := range keys {
		if item, ok := h.catalog.Equipment(key); ok {
			names = append(names, item.Name)
			continue
		}
		names = append(names, key)
	}
	return strings.Join(names, ", ")
}

func (h *Handler) export(ctx context.Context, args []string, out io.Writer) error {
	if h.exporter == nil {
		return armyerr.Internalf("export is not configured")
	}

	name := h.rosterID + ".xlsx"
	if len(args) > 0 {
		name = args[0]
	}

	summary, err := h.service.Summary(ctx, h.rosterID)
	if err != nil {
		return err
	}

	wb, err := h.exporter.Roster(summary)
	if err != nil {
		return err
	}

	path, err := h.exporter.Save(wb, name)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}

func (h *Handler) template(args []string, out io.Writer) error {
	if h.exporter == nil {
		return armyerr.Internalf("export is not configured")
	}

	name := defaultTemplateName
	if len(args) > 0 {
		name = args[0]
	}

	wb, err := h.exporter.Template()
	if err != nil {
		return err
	}

	path, err := h.exporter.Save(wb, name)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}

func (h *Handler) newRoster(ctx context.Context, args []string, out io.Writer) error {
	r, err := h.service.CreateRoster(ctx, &roster.CreateRosterInput{
		OwnerID: h.ownerID,
		Name:    strings.Join(args, " "),
	})
	if err != nil {
		return err
	}

	h.rosterID = r.ID
	fmt.Fprintf(out, "Started %s (%s)\n", r.Name, r.ID)
	return nil
}

func (h *Handler) rosters(ctx context.Context, out io.Writer) error {
	list, err := h.service.ListOwnerRosters(ctx, h.ownerID)
	if err != nil {
		return err
	}

	for _, r := range list {
		marker := " "
		if r.ID == h.rosterID {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s  %s  %d slots\n", marker, r.ID, r.Name, len(r.Slots))
	}
	return nil
}

func (h *Handler) use(ctx context.Context, args []string, out io.Writer) error {
	if len(args) != 1 {
		return armyerr.InvalidArgument("usage: use <id>")
	}

	r, err := h.service.GetRoster(ctx, args[0])
	if err != nil {
		return err
	}
	if r.OwnerID != h.ownerID {
		return armyerr.NotFoundf("roster %s not found", args[0])
	}

	h.rosterID = r.ID
	fmt.Fprintf(out, "Using %s (%s)\n", r.Name, r.ID)
	return nil
}

func (h *Handler) drop(ctx context.Context, args []string, out io.Writer) error {
	if len(args) != 1 {
		return armyerr.InvalidArgument("usage: drop <id>")
	}
	if args[0] == h.rosterID {
		return armyerr.InvalidArgument("cannot drop the roster in use")
	}

	if err := h.service.DeleteRoster(ctx, args[0]); err != nil {
		return err
	}

	fmt.Fprintf(out, "Dropped %s\n", args[0])
	return nil
}
