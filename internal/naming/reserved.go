package naming

import "strings"

func keywordSet(words string) map[string]struct{} {
	fields := strings.Fields(words)
	set := make(map[string]struct{}, len(fields))
	for _, w := range fields {
		set[w] = struct{}{}
	}
	return set
}

var reservedKeywords = map[string]map[string]struct{}{
	"MYSQL": keywordSet(`
		ACCESSIBLE ADD ALL ALTER ANALYZE AND AS ASC BEFORE BETWEEN BIGINT BINARY BLOB BOTH BY CALL
		CASCADE CASE CHANGE CHAR CHARACTER CHECK COLLATE COLUMN CONDITION CONSTRAINT CONTINUE
		CONVERT CREATE CROSS CURRENT_DATE CURRENT_TIME CURRENT_TIMESTAMP CURRENT_USER CURSOR
		DATABASE DATABASES DAY_HOUR DEC DECIMAL DECLARE DEFAULT DELAYED DELETE DESC DESCRIBE
		DISTINCT DIV DOUBLE DROP DUAL EACH ELSE ELSEIF ENCLOSED ESCAPED EXISTS EXIT EXPLAIN FALSE
		FETCH FLOAT FOR FORCE FOREIGN FROM FULLTEXT GENERATED GET GRANT GROUP GROUPS HAVING IF
		IGNORE IN INDEX INNER INOUT INSERT INT INTEGER INTERVAL INTO IS ITERATE JOIN KEY KEYS KILL
		LEADING LEAVE LEFT LIKE LIMIT LINES LOAD LOCK LONG LOOP MATCH MOD NATURAL NOT NULL NUMERIC
		OF ON OPTION OR ORDER OUT OUTER PARTITION PRECISION PRIMARY PROCEDURE PURGE RANGE RANK READ
		REAL REFERENCES REGEXP RELEASE RENAME REPEAT REPLACE REQUIRE RESIGNAL RESTRICT RETURN REVOKE
		RIGHT RLIKE ROW ROWS SCHEMA SCHEMAS SELECT SET SHOW SIGNAL SMALLINT SPATIAL SQL STARTING
		SYSTEM TABLE TERMINATED THEN TO TRAILING TRIGGER TRUE UNDO UNION UNIQUE UNLOCK UNSIGNED
		UPDATE USAGE USE USING VALUES VARCHAR VARYING WHEN WHERE WHILE WINDOW WITH WRITE XOR ZEROFILL
	`),
	"POSTGRESQL": keywordSet(`
		ALL ANALYSE ANALYZE AND ANY ARRAY AS ASC ASYMMETRIC AUTHORIZATION BINARY BOTH CASE CAST
		CHECK COLLATE COLLATION COLUMN CONCURRENTLY CONSTRAINT CREATE CROSS CURRENT_CATALOG
		CURRENT_DATE CURRENT_ROLE CURRENT_SCHEMA CURRENT_TIME CURRENT_TIMESTAMP CURRENT_USER DEFAULT
		DEFERRABLE DESC DISTINCT DO ELSE END EXCEPT FALSE FETCH FOR FOREIGN FREEZE FROM FULL GRANT
		GROUP HAVING ILIKE IN INITIALLY INNER INTERSECT INTO IS ISNULL JOIN LATERAL LEADING LEFT
		LIKE LIMIT LOCALTIME LOCALTIMESTAMP NATURAL NOT NOTNULL NULL OFFSET ON ONLY OR ORDER OUTER
		OVERLAPS PLACING PRIMARY REFERENCES RETURNING RIGHT SELECT SESSION_USER SIMILAR SOME
		SYMMETRIC TABLE TABLESAMPLE THEN TO TRAILING TRUE UNION UNIQUE USER USING VARIADIC VERBOSE
		WHEN WHERE WINDOW WITH
	`),
	"ORACLE": keywordSet(`
		ACCESS ADD ALL ALTER AND ANY AS ASC AUDIT BETWEEN BY CHAR CHECK CLUSTER COLUMN COMMENT
		COMPRESS CONNECT CREATE CURRENT DATE DECIMAL DEFAULT DELETE DESC DISTINCT DROP ELSE
		EXCLUSIVE EXISTS FILE FLOAT FOR FROM GRANT GROUP HAVING IDENTIFIED IMMEDIATE IN INCREMENT
		INDEX INITIAL INSERT INTEGER INTERSECT INTO IS LEVEL LIKE LOCK LONG MAXEXTENTS MINUS MLSLABEL
		MODE MODIFY NOAUDIT NOCOMPRESS NOT NOWAIT NULL NUMBER OF OFFLINE ON ONLINE OPTION OR ORDER
		PCTFREE PRIOR PRIVILEGES PUBLIC RAW RENAME RESOURCE REVOKE ROW ROWID ROWNUM ROWS SELECT
		SESSION SET SHARE SIZE SMALLINT START SUCCESSFUL SYNONYM SYSDATE TABLE THEN TO TRIGGER UID
		UNION UNIQUE UPDATE USER VALIDATE VALUES VARCHAR VARCHAR2 VIEW WHENEVER WHERE WITH
	`),
	"MSSQL": keywordSet(`
		ADD ALL ALTER AND ANY AS ASC AUTHORIZATION BACKUP BEGIN BETWEEN BREAK BROWSE BULK BY CASCADE
		CASE CHECK CHECKPOINT CLOSE CLUSTERED COALESCE COLLATE COLUMN COMMIT COMPUTE CONSTRAINT
		CONTAINS CONTAINSTABLE CONTINUE CONVERT CREATE CROSS CURRENT CURRENT_DATE CURRENT_TIME
		CURRENT_TIMESTAMP CURRENT_USER CURSOR DATABASE DBCC DEALLOCATE DECLARE DEFAULT DELETE DENY
		DESC DISK DISTINCT DISTRIBUTED DOUBLE DROP DUMP ELSE END ERRLVL ESCAPE EXCEPT EXEC EXECUTE
		EXISTS EXIT EXTERNAL FETCH FILE FILLFACTOR FOR FOREIGN FREETEXT FROM FULL FUNCTION GOTO
		GRANT GROUP HAVING HOLDLOCK IDENTITY IF IN INDEX INNER INSERT INTERSECT INTO IS JOIN KEY
		KILL LEFT LIKE LINENO LOAD MERGE NATIONAL NOCHECK NONCLUSTERED NOT NULL NULLIF OF OFF
		OFFSETS ON OPEN OPTION OR ORDER OUTER OVER PERCENT PIVOT PLAN PRECISION PRIMARY PRINT PROC
		PROCEDURE PUBLIC RAISERROR READ READTEXT RECONFIGURE REFERENCES REPLICATION RESTORE
		RESTRICT RETURN REVERT REVOKE RIGHT ROLLBACK ROWCOUNT ROWGUIDCOL RULE SAVE SCHEMA SELECT
		SESSION_USER SET SETUSER SHUTDOWN SOME STATISTICS SYSTEM_USER TABLE TABLESAMPLE TEXTSIZE
		THEN TO TOP TRAN TRANSACTION TRIGGER TRUNCATE UNION UNIQUE UNPIVOT UPDATE USE USER VALUES
		VARYING VIEW WAITFOR WHEN WHERE WHILE WITH
	`),
	"CASSANDRA": keywordSet(`
		ADD ALLOW ALTER AND APPLY ASC AUTHORIZE BATCH BEGIN BY COLUMNFAMILY CREATE DELETE DESC
		DESCRIBE DROP ENTRIES EXECUTE FROM FULL GRANT IF IN INDEX INFINITY INSERT INTO KEYSPACE
		LIMIT MODIFY NAN NORECURSIVE NOT NULL OF ON OR ORDER PRIMARY RENAME REPLACE REVOKE SCHEMA
		SELECT SET TABLE TO TOKEN TRUNCATE UNLOGGED UPDATE USE USING WHERE WITH
	`),
	"MONGODB": keywordSet(`
		ADMIN CONFIG LOCAL SYSTEM
	`),
}

var sqlDialects = []string{"MYSQL", "POSTGRESQL", "CASSANDRA", "ORACLE", "MSSQL"}

var dialectAliases = map[string]string{
	"MARIADB":  "MYSQL",
	"POSTGRES": "POSTGRESQL",
}

// IsReserved reports whether keyword is reserved by the given dialect.
func IsReserved(keyword, dialect string) bool {
	if keyword == "" {
		return false
	}
	dialect = strings.ToUpper(dialect)
	if alias, ok := dialectAliases[dialect]; ok {
		dialect = alias
	}
	set, ok := reservedKeywords[dialect]
	if !ok {
		return false
	}
	_, reserved := set[strings.ToUpper(keyword)]
	return reserved
}

// IsReservedTableName reports whether name cannot be used as a raw table or
// column name for databaseType. The generic "sql" type checks every SQL
// dialect the generated server can target.
func IsReservedTableName(name, databaseType string) bool {
	if databaseType == "" {
		return false
	}
	if strings.EqualFold(databaseType, "sql") {
		for _, dialect := range sqlDialects {
			if IsReserved(name, dialect) {
				return true
			}
		}
		return false
	}
	return IsReserved(name, databaseType)
}
