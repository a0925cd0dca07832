package calendar

import "errors"

// textScanner is a cursor over ISO-8601 text. Errors carry the index of
// the offending character.
type textScanner struct {
	text string
	pos  int
}

func (s *textScanner) done() bool {
	return s.pos >= len(s.text)
}

func (s *textScanner) peek() byte {
	if s.done() {
		return 0
	}
	return s.text[s.pos]
}

func (s *textScanner) fail(message string, cause error) error {
	return parseError(s.text, s.pos, message, cause)
}

func (s *textScanner) expect(ch byte) error {
	if s.peek() != ch || s.done() {
		return s.fail("expected '"+string(ch)+"' in", nil)
	}
	s.pos++
	return nil
}

// digits consumes between min and max decimal digits.
func (s *textScanner) digits(min, max int) (value int64, count int, err error) {
	start := s.pos
	for !s.done() && count < max {
		ch := s.text[s.pos]
		if ch < '0' || ch > '9' {
			break
		}
		value = value*10 + int64(ch-'0')
		count++
		s.pos++
	}
	if count < min {
		s.pos = start
		return 0, 0, s.fail("expected digits in", nil)
	}
	return value, count, nil
}

// fixed consumes exactly n decimal digits.
func (s *textScanner) fixed(n int) (int64, error) {
	v, _, err := s.digits(n, n)
	return v, err
}

// scanDate reads a date in the extended ISO-8601 form. Years of more than
// four digits require a sign; a plus sign is only allowed in that case.
func (s *textScanner) scanDate() (LocalDate, error) {
	start := s.pos
	sign := s.peek()
	if sign == '+' || sign == '-' {
		s.pos++
	}
	year, count, err := s.digits(4, 10)
	if err != nil {
		return LocalDate{}, err
	}
	switch {
	case sign == '+' && count <= 4:
		s.pos = start
		return LocalDate{}, s.fail("plus sign only allowed for years of more than four digits in", nil)
	case sign != '+' && sign != '-' && count > 4:
		s.pos = start
		return LocalDate{}, s.fail("sign required for years of more than four digits in", nil)
	}
	if sign == '-' {
		year = -year
	}
	if err := s.expect('-'); err != nil {
		return LocalDate{}, err
	}
	month, err := s.fixed(2)
	if err != nil {
		return LocalDate{}, err
	}
	if err := s.expect('-'); err != nil {
		return LocalDate{}, err
	}
	day, err := s.fixed(2)
	if err != nil {
		return LocalDate{}, err
	}
	if err := FieldYear.checkValid(year); err != nil {
		return LocalDate{}, parseError(s.text, start, "text cannot be parsed to a LocalDate", err)
	}
	date, err := DateOf(int(year), Month(month), int(day))
	if err != nil {
		return LocalDate{}, parseError(s.text, start, "text cannot be parsed to a LocalDate", err)
	}
	return date, nil
}

// scanTime reads HH:MM[:SS[.fraction]] with up to nine fraction digits.
func (s *textScanner) scanTime() (LocalTime, error) {
	start := s.pos
	hour, err := s.fixed(2)
	if err != nil {
		return LocalTime{}, err
	}
	if err := s.expect(':'); err != nil {
		return LocalTime{}, err
	}
	minute, err := s.fixed(2)
	if err != nil {
		return LocalTime{}, err
	}
	var second, nano int64
	if s.peek() == ':' {
		s.pos++
		if second, err = s.fixed(2); err != nil {
			return LocalTime{}, err
		}
		if s.peek() == '.' {
			s.pos++
			fraction, count, err := s.digits(1, 9)
			if err != nil {
				return LocalTime{}, err
			}
			for ; count < 9; count++ {
				fraction *= 10
			}
			nano = fraction
		}
	}
	t, err := TimeOf(int(hour), int(minute), int(second), int(nano))
	if err != nil {
		return LocalTime{}, parseError(s.text, start, "text cannot be parsed to a LocalTime", err)
	}
	return t, nil
}

func (s *textScanner) scanDateTime() (LocalDateTime, error) {
	date, err := s.scanDate()
	if err != nil {
		return LocalDateTime{}, err
	}
	if s.peek() != 'T' && s.peek() != 't' {
		return LocalDateTime{}, s.fail("expected 'T' in", nil)
	}
	s.pos++
	t, err := s.scanTime()
	if err != nil {
		return LocalDateTime{}, err
	}
	return DateTimeOf(date, t), nil
}

func (s *textScanner) end() error {
	if !s.done() {
		return s.fail("unparsed text found in", nil)
	}
	return nil
}

// scanOffset consumes the rest of the text as a zone offset ID.
func (s *textScanner) scanOffset() (ZoneOffset, error) {
	if s.done() {
		return ZoneOffset{}, s.fail("expected zone offset in", nil)
	}
	offset, err := ParseOffset(s.text[s.pos:])
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			return ZoneOffset{}, parseError(s.text, s.pos+pe.Index, pe.Message+" in", pe.Err)
		}
		return ZoneOffset{}, s.fail("invalid zone offset in", err)
	}
	s.pos = len(s.text)
	return offset, nil
}
