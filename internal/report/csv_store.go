package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/limbo/stravadictos/pkg/entity"
	"github.com/limbo/stravadictos/pkg/timeutil"
)

// CSVStore persists one report table per week as a csv file in a fixed
// directory, named athlete_records_<start>_<end>.csv with compressed
// dates. Saving always rewrites the whole file.
type CSVStore struct {
	dir string
}

func NewCSVStore(dir string) (*CSVStore, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.New("report directory unavailable: " + err.Error())
	}
	if !info.IsDir() {
		return nil, errors.New("report path is not a directory: " + dir)
	}
	return &CSVStore{dir: dir}, nil
}

func (s *CSVStore) FilePath(week entity.Week) string {
	name := fmt.Sprintf("athlete_records_%s_%s.csv",
		timeutil.CompressedDate(week.Start),
		timeutil.CompressedDate(week.End),
	)
	return filepath.Join(s.dir, name)
}

// Load reads the week's table if it exists, otherwise returns a template
// with one all-zero row per directory athlete.
func (s *CSVStore) Load(week entity.Week, athletes []string) ([]entity.WeeklyRow, error) {
	f, err := os.Open(s.FilePath(week))
	if errors.Is(err, os.ErrNotExist) {
		rows := make([]entity.WeeklyRow, 0, len(athletes))
		for _, name := range athletes {
			rows = append(rows, entity.WeeklyRow{Athlete: name})
		}
		return rows, nil
	}
	if err != nil {
		return nil, errors.New("opening report file error: " + err.Error())
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.New("reading report file error: " + err.Error())
	}
	if len(records) == 0 {
		return nil, errors.New("report file is empty: " + s.FilePath(week))
	}
	if len(records[0]) != 9 {
		return nil, fmt.Errorf("report file has %d columns, want 9", len(records[0]))
	}

	rows := make([]entity.WeeklyRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row := entity.WeeklyRow{Athlete: record[0]}
		for i := 0; i < 7; i++ {
			flag, err := strconv.Atoi(record[i+1])
			if err != nil {
				return nil, errors.New("parsing report day column error: " + err.Error())
			}
			row.Days[i] = flag
		}
		total, err := strconv.Atoi(record[8])
		if err != nil {
			return nil, errors.New("parsing report total column error: " + err.Error())
		}
		row.TotalDays = total
		rows = append(rows, row)
	}
	return rows, nil
}

// Save overwrites the week's table with the given rows.
func (s *CSVStore) Save(week entity.Week, rows []entity.WeeklyRow) error {
	f, err := os.Create(s.FilePath(week))
	if err != nil {
		return errors.New("creating report file error: " + err.Error())
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := make([]string, 0, 9)
	header = append(header, "ATHLETE")
	for i := 0; i < 7; i++ {
		header = append(header, timeutil.ColumnName(week.Start.AddDate(0, 0, i)))
	}
	header = append(header, "TOTAL_DAYS")
	if err := w.Write(header); err != nil {
		return errors.New("writing report header error: " + err.Error())
	}

	for _, row := range rows {
		record := make([]string, 0, 9)
		record = append(record, row.Athlete)
		for _, flag := range row.Days {
			record = append(record, strconv.Itoa(flag))
		}
		record = append(record, strconv.Itoa(row.TotalDays))
		if err := w.Write(record); err != nil {
			return errors.New("writing report row error: " + err.Error())
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.New("flushing report file error: " + err.Error())
	}
	return nil
}
