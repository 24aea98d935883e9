package csv

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

type Spec struct {
	FileName string          // 文件名称
	Titles   []string        // 每列的标题
	Data     [][]interface{} // 每行数据
}

// Create writes spec to spec.FileName, truncating any existing file.
func Create(spec *Spec) error {
	if spec == nil {
		return errors.New("parameter missing")
	}
	if spec.FileName == "" {
		return errors.New("file name missing")
	}
	file, err := os.OpenFile(spec.FileName, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0666)
	if err != nil {
		return err
	}
	defer file.Close()
	return Write(file, spec)
}

// Write encodes the titles row followed by the data rows. FileName is ignored.
func Write(w io.Writer, spec *Spec) error {
	if spec == nil {
		return errors.New("parameter missing")
	}
	csvWriter := csv.NewWriter(w)
	if len(spec.Titles) > 0 {
		if err := csvWriter.Write(spec.Titles); err != nil {
			return err
		}
	}
	for _, datarow := range spec.Data {
		row := make([]string, 0, len(datarow))
		for _, d := range datarow {
			row = append(row, toString(d))
		}
		if err := csvWriter.Write(row); err != nil {
			return err
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

func toString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	case []int:
		// 整数序列以空格分隔
		items := make([]string, len(t))
		for i, n := range t {
			items[i] = strconv.Itoa(n)
		}
		return strings.Join(items, " ")
	case nil:
		return ""
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}
