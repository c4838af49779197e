package coreutils

import (
	"fmt"
	"os"
	"reflect"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"github.com/jfrog/jfrog-client-go/utils/log"
)

// PrintTable prints a slice of rows in a table.
// The parameter rows MUST be a slice, otherwise the method panics.
// The fields of the row struct that should be printed must have the 'col-name' tag,
// holding the column name. Fields without the tag are skipped.
// String fields only. The optional 'col-max-width' tag limits the column width,
// breaking longer cell content into multiple lines.
//
// For example, printing this slice:
//
//	rows := []EnvRow{
//	    {Property: "Project root", Value: "/home/me/app"},
//	    {Property: "OS/Arch", Value: "linux/amd64"},
//	}
//	err := coreutils.PrintTable(rows, "Environment", "No environment info available")
//
// produces:
//
//	Environment
//	┌──────────────┬──────────────┐
//	│ PROPERTY     │ VALUE        │
//	├──────────────┼──────────────┤
//	│ Project root │ /home/me/app │
//	├──────────────┼──────────────┤
//	│ OS/Arch      │ linux/amd64  │
//	└──────────────┴──────────────┘
//
// If rows is empty, emptyTableMessage is printed instead.
func PrintTable(rows interface{}, title string, emptyTableMessage string) error {
	if title != "" {
		fmt.Println(title)
	}

	rowsSliceValue := reflect.ValueOf(rows)
	if rowsSliceValue.Len() == 0 && emptyTableMessage != "" {
		log.Output(emptyTableMessage)
		return nil
	}

	tableWriter := table.NewWriter()
	tableWriter.SetOutputMirror(os.Stdout)
	if log.IsStdOutTerminal() {
		tableWriter.SetStyle(table.StyleLight)
	}
	tableWriter.Style().Options.SeparateRows = true

	rowType := reflect.TypeOf(rows).Elem()
	var columnsNames []interface{}
	var fieldsIndexes []int
	var columnConfigs []table.ColumnConfig
	for i := 0; i < rowType.NumField(); i++ {
		field := rowType.Field(i)
		columnName, columnNameExist := field.Tag.Lookup("col-name")
		if !columnNameExist {
			continue
		}
		columnsNames = append(columnsNames, columnName)
		fieldsIndexes = append(fieldsIndexes, i)
		if columnMaxWidth, ok := field.Tag.Lookup("col-max-width"); ok {
			columnMaxWidthValue, err := strconv.Atoi(columnMaxWidth)
			if err != nil {
				return errorutils.CheckError(err)
			}
			columnConfigs = append(columnConfigs, table.ColumnConfig{Name: columnName, WidthMax: columnMaxWidthValue})
		}
	}
	tableWriter.AppendHeader(columnsNames)
	tableWriter.SetColumnConfigs(columnConfigs)

	for i := 0; i < rowsSliceValue.Len(); i++ {
		var rowValues []interface{}
		currRowValue := rowsSliceValue.Index(i)
		for _, fieldIndex := range fieldsIndexes {
			rowValues = append(rowValues, currRowValue.Field(fieldIndex).String())
		}
		tableWriter.AppendRow(rowValues)
	}

	tableWriter.Render()
	return nil
}
