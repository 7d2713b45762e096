package logic

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bitfantasy/fieldform/internal/fieldform/entity"
)

// ErrInvalidFormula 公式无法解析或引用了非数值数据
var ErrInvalidFormula = errors.New("invalid calculation formula")

// fieldRefPattern 匹配公式中的字段引用 field['id'] 或 field["id"]
var fieldRefPattern = regexp.MustCompile(`field\[['"]([^'"]+)['"]\]`)

// EvaluateCalculation 求值计算字段公式，任何错误都返回0
// 表单渲染期间的容错约定：公式出错不打断填写，只把计算结果显示为0
func EvaluateCalculation(formula string, data entity.JSONB) float64 {
	result, err := EvalFormula(formula, data)
	if err != nil {
		return 0
	}
	return result
}

// EvalFormula 求值计算字段公式并返回显式错误
// 字段引用替换为对应数据的数值（缺失按0处理），替换后的表达式
// 仅允许数字、四则运算符、括号、小数点与空白，出现其他内容报错
func EvalFormula(formula string, data entity.JSONB) (float64, error) {
	var refErr error
	expr := fieldRefPattern.ReplaceAllStringFunc(formula, func(match string) string {
		id := fieldRefPattern.FindStringSubmatch(match)[1]
		value, ok := data[id]
		if !ok || value == nil {
			return "0"
		}
		n := coerceNumber(value)
		if n != n { // NaN：字段有值但不是数字
			refErr = fmt.Errorf("%w: field %q is not numeric", ErrInvalidFormula, id)
			return "0"
		}
		return strconv.FormatFloat(n, 'f', -1, 64)
	})
	if refErr != nil {
		return 0, refErr
	}

	tokens, err := tokenize(expr)
	if err != nil {
		return 0, err
	}

	p := &parser{tokens: tokens}
	result, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if !p.eof() {
		return 0, fmt.Errorf("%w: unexpected %q", ErrInvalidFormula, p.peek())
	}
	return result, nil
}

func tokenize(expr string) ([]string, error) {
	var tokens []string
	i := 0
	for i < len(expr) {
		c := expr[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case strings.ContainsRune("+-*/()", rune(c)):
			tokens = append(tokens, string(c))
			i++
		case c >= '0' && c <= '9' || c == '.':
			j := i
			for j < len(expr) && (expr[j] >= '0' && expr[j] <= '9' || expr[j] == '.') {
				j++
			}
			num := expr[i:j]
			if _, err := strconv.ParseFloat(num, 64); err != nil {
				return nil, fmt.Errorf("%w: bad number %q", ErrInvalidFormula, num)
			}
			tokens = append(tokens, num)
			i = j
		default:
			return nil, fmt.Errorf("%w: unexpected character %q", ErrInvalidFormula, string(c))
		}
	}
	return tokens, nil
}

// parser 四则运算递归下降解析器
// expr := term (('+'|'-') term)*
// term := unary (('*'|'/') unary)*
// unary := ('+'|'-')* primary
// primary := number | '(' expr ')'
type parser struct {
	tokens []string
	pos    int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.tokens)
}

func (p *parser) peek() string {
	if p.eof() {
		return ""
	}
	return p.tokens[p.pos]
}

func (p *parser) next() string {
	t := p.peek()
	p.pos++
	return t
}

func (p *parser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for p.peek() == "+" || p.peek() == "-" {
		op := p.next()
		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == "+" {
			left += right
		} else {
			left -= right
		}
	}
	return left, nil
}

func (p *parser) parseTerm() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for p.peek() == "*" || p.peek() == "/" {
		op := p.next()
		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if op == "*" {
			left *= right
		} else {
			if right == 0 {
				return 0, fmt.Errorf("%w: division by zero", ErrInvalidFormula)
			}
			left /= right
		}
	}
	return left, nil
}

func (p *parser) parseUnary() (float64, error) {
	switch p.peek() {
	case "-":
		p.next()
		v, err := p.parseUnary()
		return -v, err
	case "+":
		p.next()
		return p.parseUnary()
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (float64, error) {
	if p.eof() {
		return 0, fmt.Errorf("%w: unexpected end of formula", ErrInvalidFormula)
	}
	if p.peek() == "(" {
		p.next()
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if p.peek() != ")" {
			return 0, fmt.Errorf("%w: missing closing parenthesis", ErrInvalidFormula)
		}
		p.next()
		return v, nil
	}
	tok := p.next()
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: unexpected token %q", ErrInvalidFormula, tok)
	}
	return v, nil
}
