package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
)

// Entry is one molecule record drawn from the archive or the data
// directory: the id from the file name plus the raw record bytes
type Entry struct {
	ID   int
	Name string
	Data []byte
}

// Entries gathers every .xyz record reachable from path: the members
// of a tar archive, or the .xyz files of a directory. Member names
// must follow the <prefix>_<id>.xyz convention so every job can be
// tagged with its id.
func Entries(path string) ([]Entry, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return dirEntries(path)
	}
	return archiveEntries(path)
}

func archiveEntries(name string) (entries []Entry, err error) {
	err = WalkArchive(name, func(member string, r io.Reader) error {
		id, err := FileID(member)
		if err != nil {
			return err
		}
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		entries = append(entries, Entry{ID: id, Name: member, Data: data})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func dirEntries(dir string) (entries []Entry, err error) {
	files, err := XYZFiles(dir)
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		id, err := FileID(file)
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{ID: id, Name: file, Data: data})
	}
	return entries, nil
}

// RunOne carries one entry through the whole pipeline: parse the
// record, set the job up, run the external program, read the
// energies back, and clean up. Any failure along the way lands in the
// Result instead of propagating, so one bad job never touches its
// siblings, and the Result always carries the entry's id.
func RunOne(cfg Config, lg *Logger, e Entry) (res Result) {
	res.ID = e.ID
	lg.Printf("starting computation %04d", e.ID)
	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("%s: panic: %v", e.Name, r)
		}
		if res.Err != nil {
			lg.Printf("computation %04d failed: %v", e.ID, res.Err)
		} else {
			lg.Printf("finished computation %04d", e.ID)
		}
	}()
	mol, err := ReadXYZ(bytes.NewReader(e.Data))
	if err != nil {
		res.Err = err
		return
	}
	job := NewJob(cfg, e.ID, mol)
	if err := job.Setup(); err != nil {
		res.Err = err
		return
	}
	if err := job.Run(); err != nil {
		res.Err = err
		return
	}
	res.E, res.Err = job.Energies()
	if res.Err == nil && !cfg.KeepFiles {
		if err := job.Cleanup(); err != nil {
			lg.Printf("computation %04d: cleanup: %v", e.ID, err)
		}
	}
	return
}

// RunSerial runs every entry inline, one after the other
func RunSerial(cfg Config, lg *Logger, entries []Entry) []Result {
	results := make([]Result, len(entries))
	for i, e := range entries {
		results[i] = RunOne(cfg, lg, e)
	}
	return results
}

// RunPool runs the entries across cfg.Workers goroutines. Each
// Result lands at its entry's index, so the output keeps the input
// order no matter which jobs finish first.
func RunPool(cfg Config, lg *Logger, entries []Entry) []Result {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(entries))
	work := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				results[i] = RunOne(cfg, lg, entries[i])
			}
		}()
	}
	for i := range entries {
		work <- i
	}
	close(work)
	wg.Wait()
	return results
}
