package services

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"oem-insights/models"
	"oem-insights/utils"
)

// TableService implements the interactive table pipeline over one snapshot:
// filter → sort → paginate, plus CSV export of the filtered/sorted set.
// Every operation is pure; the input slice is never reordered or mutated.
type TableService struct {
	logger   *utils.Logger
	collator *collate.Collator
}

// NewTableService creates a TableService with the given logger.
func NewTableService(logger *utils.Logger) *TableService {
	return &TableService{
		logger:   logger,
		collator: collate.New(language.English),
	}
}

// View runs the full pipeline for one query and returns the requested page
// with its pagination metadata.
func (t *TableService) View(companies []*models.Company, q models.Query) models.TableView {
	filtered := t.Filter(companies, q)
	sorted := t.Sort(filtered, q.SortKey, q.SortDir)
	return t.Paginate(sorted, q.Page)
}

// Filter keeps records matching both the search text and the category
// filter. Search is a case-insensitive substring match against the string
// form of every field; empty search matches all. The category filter only
// matches records whose equipment label carries the " - " separator and
// whose prefix equals the filter exactly; "all" or empty passes everything.
func (t *TableService) Filter(companies []*models.Company, q models.Query) []*models.Company {
	search := strings.ToLower(q.Search)
	filterAll := q.Category == "" || q.Category == models.AllCategories

	result := make([]*models.Company, 0, len(companies))
	for _, c := range companies {
		if search != "" && !matchesSearch(c, search) {
			continue
		}
		if !filterAll && !(c.HasCategoryPrefix() && c.CategoryPrefix() == q.Category) {
			continue
		}
		result = append(result, c)
	}
	return result
}

func matchesSearch(c *models.Company, search string) bool {
	for _, val := range c.Fields() {
		if strings.Contains(strings.ToLower(val), search) {
			return true
		}
	}
	return false
}

// Sort orders records by the string form of the named column using
// locale-aware collation. The sort is stable, so equal keys keep their
// incoming order. An empty or unknown key returns the input order
// untouched. The result is always a fresh slice.
func (t *TableService) Sort(companies []*models.Company, key, dir string) []*models.Company {
	sorted := make([]*models.Company, len(companies))
	copy(sorted, companies)

	if !validSortKey(key) {
		return sorted
	}

	desc := dir == models.SortDesc
	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := t.collator.CompareString(sorted[i].Field(key), sorted[j].Field(key))
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
	return sorted
}

func validSortKey(key string) bool {
	for _, k := range models.FieldKeys() {
		if k == key {
			return true
		}
	}
	return false
}

// Paginate slices out one fixed-size page. Pages are 1-based. The page
// number is not clamped here: out-of-range pages yield an empty row set,
// and callers clamp against the returned PageCount.
func (t *TableService) Paginate(companies []*models.Company, page int) models.TableView {
	total := len(companies)
	pageCount := (total + models.PageSize - 1) / models.PageSize

	start := (page - 1) * models.PageSize
	end := start + models.PageSize
	if start < 0 || start >= total {
		start, end = 0, 0
	} else if end > total {
		end = total
	}

	rows := make([]*models.Company, end-start)
	copy(rows, companies[start:end])

	return models.TableView{
		Rows: rows,
		Pagination: models.Pagination{
			Page:      page,
			PageCount: pageCount,
			Total:     total,
			Showing:   len(rows),
		},
	}
}

// ToggleSort computes the next sort state for a column header click:
// clicking the active column flips direction, clicking a new column adopts
// it ascending.
func (t *TableService) ToggleSort(curKey, curDir, reqKey string) (string, string) {
	if reqKey == curKey {
		if curDir == models.SortAsc {
			return curKey, models.SortDesc
		}
		return curKey, models.SortAsc
	}
	return reqKey, models.SortAsc
}

// CategoryOptions returns the distinct category prefixes present in the
// snapshot, alphabetically sorted, for populating a filter control. Only
// labels carrying the " - " separator contribute.
func (t *TableService) CategoryOptions(companies []*models.Company) []string {
	seen := make(map[string]struct{})
	var options []string
	for _, c := range companies {
		if !c.HasCategoryPrefix() {
			continue
		}
		prefix := c.CategoryPrefix()
		if _, ok := seen[prefix]; ok {
			continue
		}
		seen[prefix] = struct{}{}
		options = append(options, prefix)
	}
	sort.Strings(options)
	return options
}

// ExportCSV renders the filtered and sorted set — pagination is ignored —
// as delimited text: a header row of column keys, then one row per record.
// A field containing a comma is wrapped in double quotes. Embedded quote
// characters are not escaped; this matches the historical export format
// downstream tooling already consumes, not RFC 4180.
func (t *TableService) ExportCSV(companies []*models.Company, q models.Query) string {
	filtered := t.Filter(companies, q)
	sorted := t.Sort(filtered, q.SortKey, q.SortDir)

	var sb strings.Builder
	sb.WriteString(strings.Join(models.FieldKeys(), ","))
	for _, c := range sorted {
		sb.WriteByte('\n')
		for i, val := range c.Fields() {
			if i > 0 {
				sb.WriteByte(',')
			}
			if strings.Contains(val, ",") {
				sb.WriteByte('"')
				sb.WriteString(val)
				sb.WriteByte('"')
			} else {
				sb.WriteString(val)
			}
		}
	}
	return sb.String()
}
