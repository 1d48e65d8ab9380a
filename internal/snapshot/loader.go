package snapshot

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/reveng-lab/decompeval/internal/compare"
	"github.com/reveng-lab/decompeval/internal/model"
	apperrors "github.com/reveng-lab/decompeval/pkg/errors"
)

// Load reads and parses a comparison snapshot file and builds the
// comparison object.
func Load(path string) (*compare.ProgramComparison, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to read snapshot file", err)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("failed to parse snapshot: %v", err))
	}

	return Build(&file)
}

// Build validates a parsed snapshot and assembles the comparison
// object from it.
func Build(file *File) (*compare.ProgramComparison, error) {
	left, err := buildProgram(&file.Left, "left")
	if err != nil {
		return nil, err
	}
	right, err := buildProgram(&file.Right, "right")
	if err != nil {
		return nil, err
	}

	matches, err := buildFunctionMatches(file.FunctionMatches, left, right)
	if err != nil {
		return nil, err
	}
	comparisons, err := buildComparisons(file.VarnodeComparisons, left, right)
	if err != nil {
		return nil, err
	}

	return compare.NewProgramComparison(left.program, right.program, matches, comparisons), nil
}

// builtProgram keeps the lookup tables needed to resolve references
// from the match lists.
type builtProgram struct {
	program   *model.Program
	functions map[string]*model.Function
	varnodes  map[string]*model.Varnode
}

func buildProgram(pj *ProgramJSON, side string) (*builtProgram, error) {
	bp := &builtProgram{
		program:   &model.Program{Name: pj.Name},
		functions: make(map[string]*model.Function),
		varnodes:  make(map[string]*model.Varnode),
	}

	for _, gj := range pj.Globals {
		vn, err := bp.addVarnode(side, &gj, nil)
		if err != nil {
			return nil, err
		}
		bp.program.Globals = append(bp.program.Globals, vn)
	}

	for _, fj := range pj.Functions {
		if fj.Name == "" {
			return nil, validationf("%s program: function with empty name", side)
		}
		if _, dup := bp.functions[fj.Name]; dup {
			return nil, validationf("%s program: duplicate function %q", side, fj.Name)
		}
		entryKind, err := model.AddressKindFromString(fj.Entry.Kind)
		if err != nil {
			return nil, validationf("%s program: function %q: %v", side, fj.Name, err)
		}
		fn := &model.Function{Name: fj.Name, Entry: model.Address{Kind: entryKind, Offset: fj.Entry.Offset}}
		for _, vj := range fj.Variables {
			v := &model.Variable{Name: vj.Name, Param: vj.Param, Function: fn}
			for _, vnj := range vj.Varnodes {
				vn, err := bp.addVarnode(side, &vnj, v)
				if err != nil {
					return nil, err
				}
				v.Varnodes = append(v.Varnodes, vn)
			}
			fn.Variables = append(fn.Variables, v)
		}
		bp.functions[fj.Name] = fn
		bp.program.Functions = append(bp.program.Functions, fn)
	}

	return bp, nil
}

func (bp *builtProgram) addVarnode(side string, vnj *VarnodeJSON, owner *model.Variable) (*model.Varnode, error) {
	if vnj.ID == "" {
		return nil, validationf("%s program: varnode with empty id", side)
	}
	if _, dup := bp.varnodes[vnj.ID]; dup {
		return nil, validationf("%s program: duplicate varnode id %q", side, vnj.ID)
	}
	kind, err := model.AddressKindFromString(vnj.Address.Kind)
	if err != nil {
		return nil, validationf("%s program: varnode %q: %v", side, vnj.ID, err)
	}
	dt, err := buildDataType(&vnj.Type)
	if err != nil {
		return nil, validationf("%s program: varnode %q: %v", side, vnj.ID, err)
	}
	vn := model.NewVarnode(model.Address{Kind: kind, Offset: vnj.Address.Offset}, dt, owner)
	bp.varnodes[vnj.ID] = vn
	return vn, nil
}

func buildDataType(tj *DataTypeJSON) (*model.DataType, error) {
	meta, err := model.MetaTypeFromString(tj.MetaType)
	if err != nil {
		return nil, err
	}
	dt := &model.DataType{
		Name:        tj.Name,
		Meta:        meta,
		Size:        tj.Size,
		NumElements: tj.NumElements,
	}
	if tj.Base != nil {
		base, err := buildDataType(tj.Base)
		if err != nil {
			return nil, err
		}
		dt.Base = base
	}
	if meta == model.MetaTypeArray && dt.Base == nil {
		return nil, fmt.Errorf("array type %q has no base type", tj.Name)
	}
	for _, fj := range tj.Fields {
		ft, err := buildDataType(&fj.Type)
		if err != nil {
			return nil, err
		}
		dt.Fields = append(dt.Fields, model.StructField{Offset: fj.Offset, Type: ft})
	}
	return dt, nil
}

func buildFunctionMatches(mjs []FunctionMatchJSON, left, right *builtProgram) ([]compare.FunctionMatch, error) {
	matches := make([]compare.FunctionMatch, 0, len(mjs))
	for i, mj := range mjs {
		lf, ok := left.functions[mj.Left]
		if !ok {
			return nil, validationf("function match %d: unknown left function %q", i, mj.Left)
		}
		rf, ok := right.functions[mj.Right]
		if !ok {
			return nil, validationf("function match %d: unknown right function %q", i, mj.Right)
		}
		matches = append(matches, compare.FunctionMatch{Left: lf, Right: rf})
	}
	return matches, nil
}

func buildComparisons(cjs []VarnodeCompareJSON, left, right *builtProgram) ([]*compare.VarnodeCompare2, error) {
	comparisons := make([]*compare.VarnodeCompare2, 0, len(cjs))
	for i, cj := range cjs {
		lv, ok := left.varnodes[cj.Left]
		if !ok {
			return nil, validationf("varnode comparison %d: unknown left varnode %q", i, cj.Left)
		}
		rv, ok := right.varnodes[cj.Right]
		if !ok {
			return nil, validationf("varnode comparison %d: unknown right varnode %q", i, cj.Right)
		}
		level, err := compare.VarnodeCompareLevelFromString(cj.Level)
		if err != nil {
			return nil, validationf("varnode comparison %d: %v", i, err)
		}
		comparisons = append(comparisons, compare.NewVarnodeCompare2(lv, rv, level))
	}
	return comparisons, nil
}

func validationf(format string, args ...any) error {
	return apperrors.NewValidationError(fmt.Sprintf(format, args...))
}
