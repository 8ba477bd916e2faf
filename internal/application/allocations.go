package application

import (
	"cmp"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"golang.org/x/sync/errgroup"

	"eventdesk/internal/domain"
	"eventdesk/internal/domain/entities"
	"eventdesk/internal/ports/input"
	"eventdesk/internal/ports/output"
	"eventdesk/pkg/dates"
	"eventdesk/pkg/tz"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
	bulkParallelism = 8
)

// Sortable allocation columns.
const (
	ColumnGuestName     = "guest_name"
	ColumnAccommodation = "accommodation"
	ColumnRoom          = "room"
	ColumnOccupancy     = "occupancy"
	ColumnEvent         = "event_title"
	ColumnCheckIn       = "check_in_date"
	ColumnDays          = "days"
	ColumnGender        = "participant_gender"
	ColumnStatus        = "status"
)

var csvHeader = []string{"Guest Name", "Occupancy", "Room", "Shared", "Event", "Days", "Gender", "Status"}

// DescribeAccommodation derives the type, room, occupancy and shared labels
// shown for an allocation.
func DescribeAccommodation(a entities.AccommodationAllocation) input.AccommodationInfo {
	switch {
	case a.Room != nil:
		shared := "No"
		if a.Room.Capacity > 1 && a.Room.CurrentOccupants > 1 {
			shared = "Yes"
		}
		return input.AccommodationInfo{
			Type:      "Guesthouse",
			Room:      "Room " + a.Room.RoomNumber,
			Occupancy: fmt.Sprintf("%d/%d", a.Room.CurrentOccupants, a.Room.Capacity),
			Shared:    shared,
		}
	case a.VendorAccommodation != nil:
		room := "Room"
		if a.RoomType != "" {
			room = capitalize(a.RoomType) + " Room"
		}
		shared := "No"
		if a.RoomType == "double" {
			shared = "Possible"
		}
		return input.AccommodationInfo{
			Type:      "Vendor Hotel",
			Room:      room,
			Occupancy: fmt.Sprintf("%d/%d", a.VendorAccommodation.CurrentOccupants, a.VendorAccommodation.Capacity),
			Shared:    shared,
		}
	}
	return input.AccommodationInfo{Type: "Unknown", Room: "-", Occupancy: "-", Shared: "-"}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// StayDays is the number of started days between check-in and check-out.
func StayDays(a entities.AccommodationAllocation) int {
	return dates.DaysBetween(a.CheckInDate, a.CheckOutDate)
}

func toRows(items []entities.AccommodationAllocation) []input.AllocationRow {
	rows := make([]input.AllocationRow, len(items))
	for i, a := range items {
		rows[i] = input.AllocationRow{
			AccommodationAllocation: a,
			Info:                    DescribeAccommodation(a),
			Days:                    StayDays(a),
		}
	}
	return rows
}

func facetActive(v string) bool {
	return v != "" && !strings.EqualFold(v, input.FacetAll)
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// FilterAllocations applies the search box and the facet dropdowns. Every
// active facet can only remove rows.
func FilterAllocations(rows []input.AllocationRow, f input.AllocationFilter) []input.AllocationRow {
	search := strings.TrimSpace(f.Search)
	out := make([]input.AllocationRow, 0, len(rows))
	for _, r := range rows {
		if search != "" &&
			!containsFold(r.GuestName, search) &&
			!containsFold(r.GuestEmail, search) &&
			!containsFold(r.EventTitle, search) {
			continue
		}
		// The occupancy dropdown offers "guesthouse" and "vendor", matched
		// against the accommodation type.
		if facetActive(f.Occupancy) && !containsFold(r.Info.Type, f.Occupancy) {
			continue
		}
		if facetActive(f.Room) && !containsFold(r.Info.Room, f.Room) {
			continue
		}
		if facetActive(f.Event) && r.EventTitle != f.Event {
			continue
		}
		if facetActive(f.Gender) && !strings.EqualFold(r.ParticipantGender, f.Gender) {
			continue
		}
		if facetActive(f.Status) && r.Status != f.Status {
			continue
		}
		out = append(out, r)
	}
	return out
}

func checkInTime(r input.AllocationRow) time.Time {
	t, _ := dates.Parse(r.CheckInDate)
	return t
}

func compareRows(column string) func(a, b input.AllocationRow) int {
	text := func(get func(input.AllocationRow) string) func(a, b input.AllocationRow) int {
		return func(a, b input.AllocationRow) int {
			return strings.Compare(strings.ToLower(get(a)), strings.ToLower(get(b)))
		}
	}
	switch column {
	case ColumnGuestName:
		return text(func(r input.AllocationRow) string { return r.GuestName })
	case ColumnAccommodation:
		return text(func(r input.AllocationRow) string { return r.Info.Type })
	case ColumnRoom:
		return text(func(r input.AllocationRow) string { return r.Info.Room })
	case ColumnOccupancy:
		return text(func(r input.AllocationRow) string { return r.Info.Occupancy })
	case ColumnEvent:
		return text(func(r input.AllocationRow) string { return r.EventTitle })
	case ColumnGender:
		return text(func(r input.AllocationRow) string { return r.ParticipantGender })
	case ColumnStatus:
		return text(func(r input.AllocationRow) string { return r.Status })
	case ColumnDays:
		return func(a, b input.AllocationRow) int { return cmp.Compare(a.Days, b.Days) }
	case ColumnCheckIn:
		return func(a, b input.AllocationRow) int { return checkInTime(a).Compare(checkInTime(b)) }
	}
	return nil
}

// SortAllocations returns a sorted copy. SortNone and unknown columns keep
// the backend order.
func SortAllocations(rows []input.AllocationRow, s input.SortState) []input.AllocationRow {
	out := slices.Clone(rows)
	less := compareRows(s.Column)
	if less == nil || s.Direction == input.SortNone {
		return out
	}
	if s.Direction == input.SortDesc {
		slices.SortStableFunc(out, func(a, b input.AllocationRow) int { return less(b, a) })
		return out
	}
	slices.SortStableFunc(out, less)
	return out
}

// Paginate returns the requested 1-based page, clamping page and size.
func Paginate[T any](items []T, page, size int) (pageItems []T, currentPage, totalPages int) {
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	totalPages = (len(items) + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}
	currentPage = min(max(page, 1), totalPages)
	start := (currentPage - 1) * size
	end := min(start+size, len(items))
	if start >= len(items) {
		return []T{}, currentPage, totalPages
	}
	return items[start:end], currentPage, totalPages
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// WriteAllocationsCSV writes the export header and one line per row. The
// Occupancy column carries the accommodation type, as on screen.
func WriteAllocationsCSV(w io.Writer, rows []input.AllocationRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		days := "-"
		if r.CheckInDate != "" && r.CheckOutDate != "" {
			days = strconv.Itoa(r.Days) + " days"
		}
		record := []string{
			r.GuestName,
			r.Info.Type,
			r.Info.Room,
			r.Info.Shared,
			orDash(r.EventTitle),
			days,
			orDash(r.ParticipantGender),
			r.Status,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", r.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFilename names the CSV after today's date in loc.
func ExportFilename(loc *time.Location) string {
	return "allocations-" + tz.Today(loc) + ".csv"
}

var _ input.AllocationUseCase = (*AllocationService)(nil)

type AllocationService struct {
	gateway    output.AccommodationGateway
	translator output.T
}

func NewAllocationService(gateway output.AccommodationGateway, translator output.T) *AllocationService {
	return &AllocationService{gateway: gateway, translator: translator}
}

func (s *AllocationService) rows(ctx context.Context, eventID int, q input.AllocationQuery) (all, filtered []input.AllocationRow, err error) {
	items, err := s.gateway.ListEventAllocations(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}
	all = toRows(items)
	filtered = SortAllocations(FilterAllocations(all, q.Filter), q.Sort)
	return all, filtered, nil
}

func (s *AllocationService) List(ctx context.Context, eventID int, q input.AllocationQuery) (*input.AllocationPage, error) {
	all, filtered, err := s.rows(ctx, eventID, q)
	if err != nil {
		return nil, err
	}
	size := q.PageSize
	if size <= 0 {
		size = defaultPageSize
	}
	size = min(size, maxPageSize)
	items, page, totalPages := Paginate(filtered, q.Page, size)
	return &input.AllocationPage{
		Items:      items,
		Total:      len(all),
		Filtered:   len(filtered),
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
	}, nil
}

// Export writes every row matching q as CSV; pagination is ignored.
func (s *AllocationService) Export(ctx context.Context, eventID int, q input.AllocationQuery, w io.Writer) error {
	_, filtered, err := s.rows(ctx, eventID, q)
	if err != nil {
		return err
	}
	return WriteAllocationsCSV(w, filtered)
}

func (s *AllocationService) CheckIn(ctx context.Context, allocationID int) error {
	return s.gateway.CheckInAllocation(ctx, allocationID)
}

func (s *AllocationService) Delete(ctx context.Context, allocationID int) error {
	return s.gateway.DeleteAllocation(ctx, allocationID)
}

// BulkCheckIn checks in the selected allocations that are still booked.
// Calls run in parallel and one failure does not stop the others.
func (s *AllocationService) BulkCheckIn(ctx context.Context, eventID int, allocationIDs []int) (*input.BulkResult, error) {
	items, err := s.gateway.ListEventAllocations(ctx, eventID)
	if err != nil {
		return nil, err
	}
	status := make(map[int]string, len(items))
	for _, a := range items {
		status[a.ID] = a.Status
	}

	eligible := make([]int, 0, len(allocationIDs))
	seen := make(map[int]bool, len(allocationIDs))
	for _, id := range allocationIDs {
		if seen[id] || status[id] != domain.StatusBooked {
			continue
		}
		seen[id] = true
		eligible = append(eligible, id)
	}

	res := &input.BulkResult{
		Requested: len(allocationIDs),
		Eligible:  len(eligible),
		Failed:    []int{},
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(bulkParallelism)
	for _, id := range eligible {
		id := id
		g.Go(func() error {
			err := s.gateway.CheckInAllocation(ctx, id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				slog.Warn("bulk check-in failed", "allocation_id", id, "error", err)
				res.Failed = append(res.Failed, id)
				return nil
			}
			res.Succeeded++
			return nil
		})
	}
	_ = g.Wait()
	slices.Sort(res.Failed)

	res.Notice = s.bulkNotice(domain.ScopeFromContext(ctx).Locale, res)
	return res, nil
}

func (s *AllocationService) bulkNotice(locale string, res *input.BulkResult) input.Notice {
	data := map[string]any{"Succeeded": res.Succeeded, "Total": res.Eligible}
	switch {
	case res.Eligible == 0:
		return input.Notice{
			Title:       s.translator.T(locale, "notice.error.title", nil),
			Description: s.translator.T(locale, "notice.checkin.none.description", nil),
			Variant:     input.VariantDestructive,
		}
	case res.Succeeded == res.Eligible:
		return successNotice(s.translator, locale, "notice.checkin.success.description", data)
	case res.Succeeded > 0:
		return input.Notice{
			Title:       s.translator.T(locale, "notice.checkin.partial.title", nil),
			Description: s.translator.T(locale, "notice.checkin.partial.description", data),
		}
	}
	return input.Notice{
		Title:       s.translator.T(locale, "notice.error.title", nil),
		Description: s.translator.T(locale, "notice.checkin.failed.description", nil),
		Variant:     input.VariantDestructive,
	}
}

// PendingCount returns the number of allocations awaiting approval for the
// caller's tenant.
func (s *AllocationService) PendingCount(ctx context.Context) (int, error) {
	slug := domain.ScopeFromContext(ctx).TenantSlug
	if slug == "" {
		return 0, domain.ErrMissingTenant
	}
	return s.gateway.CountPendingAllocations(ctx, slug)
}
