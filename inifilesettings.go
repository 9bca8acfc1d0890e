// Copyright 2011 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfview

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Gipcomp/pdfview/errs"
)

const iniFileTimeStampFormat = "2006-01-02"

// IniFileSettings stores viewer settings as key=value lines. Keys put with
// PutExpiring carry a timestamp and are dropped on Save once older than the
// expire duration.
type IniFileSettings struct {
	fileName       string
	organization   string
	product        string
	key2Record     map[string]iniFileRecord
	expireDuration time.Duration
	portable       bool
}

var _ Settings = (*IniFileSettings)(nil)

type iniFileRecord struct {
	value     string
	timestamp time.Time
}

func NewIniFileSettings(fileName string) *IniFileSettings {
	return &IniFileSettings{
		fileName:   fileName,
		key2Record: make(map[string]iniFileRecord),
	}
}

func (ifs *IniFileSettings) Get(key string) (string, bool) {
	record, ok := ifs.key2Record[key]
	return record.value, ok
}

func (ifs *IniFileSettings) Timestamp(key string) (time.Time, bool) {
	record, ok := ifs.key2Record[key]
	return record.timestamp, ok
}

func (ifs *IniFileSettings) Put(key, value string) error {
	return ifs.put(key, value, false)
}

func (ifs *IniFileSettings) PutExpiring(key, value string) error {
	return ifs.put(key, value, true)
}

func (ifs *IniFileSettings) put(key, value string, expiring bool) error {
	if key == "" {
		return errs.NewError("key must not be empty")
	}
	if strings.ContainsAny(key, "|=\r\n") {
		return errs.NewError("key contains at least one of the invalid characters '|=\\r\\n'")
	}
	if strings.ContainsAny(value, "\r\n") {
		return errs.NewError("value contains at least one of the invalid characters '\\r\\n'")
	}

	var timestamp time.Time
	if expiring {
		timestamp = time.Now()
	}

	ifs.key2Record[key] = iniFileRecord{value, timestamp}

	return nil
}

func (ifs *IniFileSettings) Remove(key string) error {
	delete(ifs.key2Record, key)

	return nil
}

func (ifs *IniFileSettings) ExpireDuration() time.Duration {
	return ifs.expireDuration
}

func (ifs *IniFileSettings) SetExpireDuration(expireDuration time.Duration) {
	ifs.expireDuration = expireDuration
}

func (ifs *IniFileSettings) Portable() bool {
	return ifs.portable
}

// SetPortable makes FilePath resolve relative to the working directory
// instead of the user configuration directory.
func (ifs *IniFileSettings) SetPortable(portable bool) {
	ifs.portable = portable
}

// SetAppName sets the sub directories of the user configuration directory
// the file is kept in.
func (ifs *IniFileSettings) SetAppName(organization, product string) {
	ifs.organization = organization
	ifs.product = product
}

func (ifs *IniFileSettings) FilePath() string {
	if ifs.portable {
		absPath, err := filepath.Abs(ifs.fileName)
		if err != nil {
			return ""
		}

		return absPath
	}

	configPath, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(
		configPath,
		ifs.organization,
		ifs.product,
		ifs.fileName)
}

func (ifs *IniFileSettings) fileExists() (bool, error) {
	if _, err := os.Stat(ifs.FilePath()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, errs.WrapError(err)
	}

	return true, nil
}

func (ifs *IniFileSettings) withFile(flags int, f func(file *os.File) error) error {
	filePath := ifs.FilePath()
	if filePath == "" {
		return errs.NewError("cannot determine settings file path")
	}

	dirPath, _ := filepath.Split(filePath)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return errs.WrapError(err)
	}

	file, err := os.OpenFile(filePath, flags, 0644)
	if err != nil {
		return errs.WrapError(err)
	}
	defer file.Close()

	return f(file)
}

func (ifs *IniFileSettings) Load() error {
	exists, err := ifs.fileExists()
	if err != nil {
		return err
	}

	if !exists {
		return nil
	}

	return ifs.withFile(os.O_RDONLY, func(file *os.File) error {
		scanner := bufio.NewScanner(file)

		for scanner.Scan() {
			line := scanner.Text()
			if strings.TrimSpace(line) == "" {
				continue
			}

			assignIndex := strings.Index(line, "=")
			if assignIndex == -1 {
				return errs.NewError("bad line format: missing '='")
			}

			key := strings.TrimSpace(line[:assignIndex])

			var ts time.Time
			if parts := strings.Split(key, "|"); len(parts) > 1 {
				key = parts[0]
				if ts, _ = time.Parse(iniFileTimeStampFormat, parts[1]); ts.IsZero() {
					ts = time.Now()
				}
			}

			value := strings.TrimSpace(line[assignIndex+1:])

			ifs.key2Record[key] = iniFileRecord{value, ts}
		}

		if err := scanner.Err(); err != nil {
			return errs.WrapError(err)
		}

		return nil
	})
}

func (ifs *IniFileSettings) Save() error {
	return ifs.withFile(os.O_CREATE|os.O_TRUNC|os.O_WRONLY, func(file *os.File) error {
		bufWriter := bufio.NewWriter(file)

		keys := make([]string, 0, len(ifs.key2Record))

		for key, record := range ifs.key2Record {
			if ifs.expireDuration <= 0 || record.timestamp.IsZero() || time.Since(record.timestamp) < ifs.expireDuration {
				keys = append(keys, key)
			}
		}

		sort.Strings(keys)

		for _, key := range keys {
			record := ifs.key2Record[key]

			line := key
			if !record.timestamp.IsZero() {
				line += "|" + record.timestamp.Format(iniFileTimeStampFormat)
			}
			line += "=" + record.value + "\r\n"

			if _, err := bufWriter.WriteString(line); err != nil {
				return errs.WrapError(err)
			}
		}

		if err := bufWriter.Flush(); err != nil {
			return errs.WrapError(err)
		}

		return nil
	})
}
